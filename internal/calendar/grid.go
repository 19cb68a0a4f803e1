// Package calendar builds the month-grid view: a run of leading
// placeholder cells aligning day 1 to its weekday (Sunday-first),
// followed by one cell per day with that day's events bucketed in.
package calendar

import (
	"fmt"
	"time"

	"famorg/internal/model"
	"famorg/internal/schedule"
)

// Cell is one slot in the month grid. Leading placeholders have Empty
// set and carry no day number.
type Cell struct {
	Day      int           `json:"day,omitempty"`
	Empty    bool          `json:"empty,omitempty"`
	Date     string        `json:"date,omitempty"`
	Events   []model.Event `json:"events,omitempty"`
	Today    bool          `json:"today,omitempty"`
	Selected bool          `json:"selected,omitempty"`
}

// DateString formats a grid date as zero-padded YYYY-MM-DD, the format
// events store their date in.
func DateString(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// DaysIn returns the number of days in the given month. Day zero of the
// following month normalizes to the last day of this one.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// firstWeekday returns the weekday offset of day 1, with Sunday as 0.
func firstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// BuildMonthCells lays out one month. The event list is taken whole; the
// calendar shows past events too. now supplies the "today" highlight in
// its own location, selected is a YYYY-MM-DD string or empty.
func BuildMonthCells(year int, month time.Month, events []model.Event, now time.Time, selected string) []Cell {
	today := schedule.DateOf(now)

	cells := make([]Cell, 0, firstWeekday(year, month)+DaysIn(year, month))
	for i := 0; i < firstWeekday(year, month); i++ {
		cells = append(cells, Cell{Empty: true})
	}

	for day := 1; day <= DaysIn(year, month); day++ {
		date := DateString(year, month, day)
		cells = append(cells, Cell{
			Day:      day,
			Date:     date,
			Events:   EventsOn(events, date),
			Today:    today.Year == year && today.Month == month && today.Day == day,
			Selected: selected == date,
		})
	}
	return cells
}

// EventsOn returns the events dated exactly date, ordered by ascending
// start time.
func EventsOn(events []model.Event, date string) []model.Event {
	var matched []model.Event
	for _, e := range events {
		if e.Date == date {
			matched = append(matched, e)
		}
	}
	return schedule.SortByDateThenTime(matched)
}

// View is the navigation state of a calendar: the displayed month and
// the selected day, if any.
type View struct {
	Year     int
	Month    time.Month
	Selected string
}

// NewView opens a view on the month containing now.
func NewView(now time.Time) *View {
	return &View{Year: now.Year(), Month: now.Month()}
}

// Prev moves to the previous month. time.Date normalizes the year
// rollover (month zero becomes December of the prior year). Changing
// months drops the selection.
func (v *View) Prev() {
	t := time.Date(v.Year, v.Month-1, 1, 0, 0, 0, 0, time.UTC)
	v.Year, v.Month = t.Year(), t.Month()
	v.Selected = ""
}

// Next moves to the following month, with the same normalization.
func (v *View) Next() {
	t := time.Date(v.Year, v.Month+1, 1, 0, 0, 0, 0, time.UTC)
	v.Year, v.Month = t.Year(), t.Month()
	v.Selected = ""
}

// GoToToday jumps back to the current month and drops the selection.
func (v *View) GoToToday(now time.Time) {
	v.Year, v.Month = now.Year(), now.Month()
	v.Selected = ""
}

// Select marks a day of the displayed month as selected.
func (v *View) Select(day int) {
	v.Selected = DateString(v.Year, v.Month, day)
}

// Cells renders the view against an event list.
func (v *View) Cells(events []model.Event, now time.Time) []Cell {
	return BuildMonthCells(v.Year, v.Month, events, now, v.Selected)
}

// SelectedEvents returns the selected day's events sorted by start time,
// or nil when nothing is selected.
func (v *View) SelectedEvents(events []model.Event) []model.Event {
	if v.Selected == "" {
		return nil
	}
	return EventsOn(events, v.Selected)
}
