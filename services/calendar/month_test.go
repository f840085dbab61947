package calendar

import (
	"testing"
	"time"
)

func TestBuildMonthGrid_FullWeeks(t *testing.T) {
	// June 2025: starts on a Sunday, ends on a Monday. Sunday-start grid.
	weeks := buildMonthGrid(2025, 6, time.Sunday, "2025-06-15", nil, nil)
	if len(weeks) != 5 {
		t.Fatalf("June 2025 should span 5 Sunday-start weeks, got %d", len(weeks))
	}
	if weeks[0][0].Date != "2025-06-01" {
		t.Errorf("grid should start on 2025-06-01, got %s", weeks[0][0].Date)
	}
	if last := weeks[4][6].Date; last != "2025-07-05" {
		t.Errorf("grid should pad through 2025-07-05, got %s", last)
	}
}

func TestBuildMonthGrid_LeadingPadding(t *testing.T) {
	// May 2025 starts on a Thursday; a Sunday-start grid pads with April days.
	weeks := buildMonthGrid(2025, 5, time.Sunday, "2025-05-10", nil, nil)
	first := weeks[0][0]
	if first.Date != "2025-04-27" {
		t.Fatalf("expected leading pad 2025-04-27, got %s", first.Date)
	}
	if first.IsCurrentMonth {
		t.Error("April pad day must not be flagged current month")
	}
	if !weeks[0][4].IsCurrentMonth || weeks[0][4].Date != "2025-05-01" {
		t.Errorf("2025-05-01 misplaced: %+v", weeks[0][4])
	}
}

func TestBuildMonthGrid_MondayWeekStart(t *testing.T) {
	weeks := buildMonthGrid(2025, 5, time.Monday, "2025-05-10", nil, nil)
	if weeks[0][0].Date != "2025-04-28" {
		t.Errorf("Monday-start grid for May 2025 should open on 2025-04-28, got %s", weeks[0][0].Date)
	}
}

func TestBuildMonthGrid_Flags(t *testing.T) {
	exceptions := map[string]bool{"2025-06-10": true}
	selected := map[string]bool{"2025-06-20": true}
	weeks := buildMonthGrid(2025, 6, time.Sunday, "2025-06-15", exceptions, selected)

	cells := map[string]int{} // date -> weekIdx*7+cellIdx
	for wi, w := range weeks {
		for ci, c := range w {
			cells[c.Date] = wi*7 + ci
			switch {
			case c.Date < "2025-06-15":
				if !c.IsPast || c.IsToday {
					t.Errorf("%s should be past, flags %+v", c.Date, c)
				}
			case c.Date == "2025-06-15":
				if !c.IsToday || c.IsPast {
					t.Errorf("today flags wrong: %+v", c)
				}
			default:
				if c.IsPast || c.IsToday {
					t.Errorf("%s should be upcoming, flags %+v", c.Date, c)
				}
			}
			if c.Date == "2025-06-10" && !c.IsException {
				t.Error("2025-06-10 should carry the exception flag")
			}
			if c.Date == "2025-06-20" && !c.IsSelected {
				t.Error("2025-06-20 should carry the selected flag")
			}
		}
	}
	if _, ok := cells["2025-06-30"]; !ok {
		t.Error("grid must include the month's last day")
	}
}

func TestBuildMonthGrid_YearBoundary(t *testing.T) {
	// January 2026 starts on a Thursday; leading pad reaches back into December 2025.
	weeks := buildMonthGrid(2026, 1, time.Sunday, "2026-01-10", nil, nil)
	if weeks[0][0].Date != "2025-12-28" {
		t.Errorf("expected pad from 2025-12-28, got %s", weeks[0][0].Date)
	}
	last := weeks[len(weeks)-1][6]
	if last.Date < "2026-01-31" {
		t.Errorf("grid must cover through 2026-01-31, ends at %s", last.Date)
	}
}
