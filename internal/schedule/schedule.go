// Package schedule holds the pure event-list logic behind the dashboard:
// pruning events that have already ended, ordering what remains, and
// text search. Dates and times arrive as fixed-format strings; they are
// parsed into value types here so that comparisons never depend on the
// string encoding.
package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"famorg/internal/model"
)

// Date is a calendar date without a time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf truncates an instant to its calendar date in the instant's location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Compare returns -1, 0, or 1 ordering d against o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmp(d.Year, o.Year)
	case d.Month != o.Month:
		return cmp(int(d.Month), int(o.Month))
	default:
		return cmp(d.Day, o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// Clock is a time of day with minute resolution.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses an HH:MM 24-hour string.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// ClockOf truncates an instant to its time of day in the instant's location.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Compare returns -1, 0, or 1 ordering c against o.
func (c Clock) Compare(o Clock) int {
	if c.Hour != o.Hour {
		return cmp(c.Hour, o.Hour)
	}
	return cmp(c.Minute, o.Minute)
}

func (c Clock) After(o Clock) bool { return c.Compare(o) > 0 }

func cmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// FilterUpcoming returns the events that have not yet ended relative to
// now, evaluated in now's location. An event dated after today is always
// upcoming. An event dated today is upcoming while its end time is still
// ahead; without an end time its start time decides; with neither time it
// counts for the whole day. Events with a malformed date are dropped.
func FilterUpcoming(events []model.Event, now time.Time) []model.Event {
	today := DateOf(now)
	current := ClockOf(now)

	var upcoming []model.Event
	for _, e := range events {
		d, err := ParseDate(e.Date)
		if err != nil {
			continue
		}
		switch {
		case d.After(today):
			upcoming = append(upcoming, e)
		case d.Before(today):
			// already past
		default:
			if isUpcomingToday(e, current) {
				upcoming = append(upcoming, e)
			}
		}
	}
	return upcoming
}

func isUpcomingToday(e model.Event, current Clock) bool {
	if e.EndTime != "" {
		end, err := ParseClock(e.EndTime)
		return err == nil && end.After(current)
	}
	if e.StartTime != "" {
		start, err := ParseClock(e.StartTime)
		return err == nil && start.After(current)
	}
	// No times at all: an all-day entry counts until the day ends.
	return true
}

// SortByDateThenTime returns a copy of events ordered by ascending date,
// then ascending start time. The sort is stable: ties keep their input
// order. Events whose date fails to parse sort first; an empty start
// time sorts before any timed event on the same day.
func SortByDateThenTime(events []model.Event) []model.Event {
	sorted := make([]model.Event, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, erri := ParseDate(sorted[i].Date)
		dj, errj := ParseDate(sorted[j].Date)
		if erri != nil || errj != nil {
			return erri != nil && errj == nil
		}
		if c := di.Compare(dj); c != 0 {
			return c < 0
		}
		return startClock(sorted[i]).Compare(startClock(sorted[j])) < 0
	})
	return sorted
}

// startClock yields a sortable start time, mapping absent or malformed
// values to the start of the day.
func startClock(e model.Event) Clock {
	if e.StartTime == "" {
		return Clock{}
	}
	c, err := ParseClock(e.StartTime)
	if err != nil {
		return Clock{}
	}
	return c
}

// Search filters events by a case-insensitive substring match against
// title, location, and required items. An empty term matches everything.
func Search(events []model.Event, term string) []model.Event {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return events
	}

	var matched []model.Event
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Title), term) ||
			strings.Contains(strings.ToLower(e.Location), term) ||
			strings.Contains(strings.ToLower(e.RequiredItems), term) {
			matched = append(matched, e)
		}
	}
	return matched
}
