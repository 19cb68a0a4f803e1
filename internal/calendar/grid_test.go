package calendar

import (
	"testing"
	"time"

	"famorg/internal/model"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func dayCells(cells []Cell) []Cell {
	var days []Cell
	for _, c := range cells {
		if !c.Empty {
			days = append(days, c)
		}
	}
	return days
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29}, // leap year
		{2025, time.February, 28},
		{2025, time.January, 31},
		{2025, time.April, 30},
		{2000, time.February, 29}, // divisible-by-400 leap year
		{1900, time.February, 28}, // century non-leap
	}
	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestBuildMonthCellsLeapFebruary(t *testing.T) {
	cells := BuildMonthCells(2024, time.February, nil, testNow, "")
	if got := len(dayCells(cells)); got != 29 {
		t.Errorf("Feb 2024 day cells = %d, want 29", got)
	}

	cells = BuildMonthCells(2025, time.February, nil, testNow, "")
	if got := len(dayCells(cells)); got != 28 {
		t.Errorf("Feb 2025 day cells = %d, want 28", got)
	}
}

func TestBuildMonthCellsLeadingPlaceholders(t *testing.T) {
	// January 2025 starts on a Wednesday: Sun/Mon/Tue placeholders.
	cells := BuildMonthCells(2025, time.January, nil, testNow, "")
	for i := 0; i < 3; i++ {
		if !cells[i].Empty {
			t.Fatalf("cell %d should be a placeholder", i)
		}
	}
	if cells[3].Empty || cells[3].Day != 1 {
		t.Fatalf("cell 3 should be day 1, got %+v", cells[3])
	}
}

func TestBuildMonthCellsNoLeadingPlaceholdersOnSundayStart(t *testing.T) {
	// June 2025 starts on a Sunday.
	cells := BuildMonthCells(2025, time.June, nil, testNow, "")
	if cells[0].Empty {
		t.Fatal("month starting on Sunday should have no placeholders")
	}
	if cells[0].Day != 1 {
		t.Fatalf("first cell day = %d, want 1", cells[0].Day)
	}
}

func TestBuildMonthCellsBucketsEvents(t *testing.T) {
	events := []model.Event{
		{Title: "swim", Date: "2025-06-05", StartTime: "14:00"},
		{Title: "dentist", Date: "2025-06-05", StartTime: "09:00"},
		{Title: "other month", Date: "2025-07-05"},
	}

	cells := BuildMonthCells(2025, time.June, events, testNow, "")
	day5 := dayCells(cells)[4]
	if len(day5.Events) != 2 {
		t.Fatalf("day 5 events = %d, want 2", len(day5.Events))
	}
	// Bucketed events come back sorted by start time.
	if day5.Events[0].Title != "dentist" {
		t.Errorf("first event = %q, want dentist", day5.Events[0].Title)
	}

	for _, c := range dayCells(cells) {
		if c.Day != 5 && len(c.Events) != 0 {
			t.Errorf("day %d should have no events", c.Day)
		}
	}
}

func TestBuildMonthCellsTodayAndSelectedFlags(t *testing.T) {
	cells := BuildMonthCells(2025, time.June, nil, testNow, "2025-06-20")
	for _, c := range dayCells(cells) {
		if (c.Day == 15) != c.Today {
			t.Errorf("day %d Today = %v", c.Day, c.Today)
		}
		if (c.Day == 20) != c.Selected {
			t.Errorf("day %d Selected = %v", c.Day, c.Selected)
		}
	}

	// A different month never flags today.
	for _, c := range BuildMonthCells(2025, time.July, nil, testNow, "") {
		if c.Today {
			t.Error("July cell flagged as today while now is in June")
		}
	}
}

func TestViewNavigationYearRollover(t *testing.T) {
	v := &View{Year: 2025, Month: time.January}
	v.Prev()
	if v.Year != 2024 || v.Month != time.December {
		t.Errorf("Prev from Jan 2025 = %d-%v, want 2024-December", v.Year, v.Month)
	}

	v = &View{Year: 2024, Month: time.December}
	v.Next()
	if v.Year != 2025 || v.Month != time.January {
		t.Errorf("Next from Dec 2024 = %d-%v, want 2025-January", v.Year, v.Month)
	}
}

func TestViewNavigationClearsSelection(t *testing.T) {
	v := NewView(testNow)
	v.Select(10)
	if v.Selected != "2025-06-10" {
		t.Fatalf("Selected = %q, want 2025-06-10", v.Selected)
	}

	v.Next()
	if v.Selected != "" {
		t.Error("Next should clear the selection")
	}

	v.Select(3)
	v.Prev()
	if v.Selected != "" {
		t.Error("Prev should clear the selection")
	}

	v.Select(3)
	v.GoToToday(testNow)
	if v.Selected != "" {
		t.Error("GoToToday should clear the selection")
	}
}

func TestViewSelectedEvents(t *testing.T) {
	events := []model.Event{
		{Title: "late", Date: "2025-06-10", StartTime: "18:00"},
		{Title: "early", Date: "2025-06-10", StartTime: "08:00"},
	}

	v := NewView(testNow)
	if got := v.SelectedEvents(events); got != nil {
		t.Fatal("no selection should yield nil")
	}

	v.Select(10)
	got := v.SelectedEvents(events)
	if len(got) != 2 || got[0].Title != "early" {
		t.Fatalf("selected events = %+v, want early first", got)
	}
}

func TestDateStringZeroPadding(t *testing.T) {
	if got := DateString(2025, time.March, 7); got != "2025-03-07" {
		t.Errorf("DateString = %q, want 2025-03-07", got)
	}
}
