package calendar

import (
	"fmt"
	"time"

	"medibook/models"
)

// isoDate builds a "YYYY-MM-DD" string straight from local calendar fields.
// Formatting a reparsed time here would shift dates under non-UTC timezones.
func isoDate(y int, m time.Month, d int) string {
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// BuildMonthGrid renders year/month as complete weeks starting on weekStart,
// padding with adjacent-month days so every row has 7 cells.
func BuildMonthGrid(year, month int, weekStart time.Weekday, exceptionDates, selectedDates map[string]bool) []models.Week {
	now := time.Now()
	today := isoDate(now.Year(), now.Month(), now.Day())
	return buildMonthGrid(year, month, weekStart, today, exceptionDates, selectedDates)
}

func buildMonthGrid(year, month int, weekStart time.Weekday, today string, exceptionDates, selectedDates map[string]bool) []models.Week {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)

	// Walk back from the 1st to the row's first weekday.
	lead := (int(first.Weekday()) - int(weekStart) + 7) % 7
	cur := first.AddDate(0, 0, -lead)

	var weeks []models.Week
	for {
		var week models.Week
		for i := 0; i < 7; i++ {
			date := isoDate(cur.Year(), cur.Month(), cur.Day())
			week[i] = models.DayCell{
				Date:           date,
				Day:            cur.Day(),
				IsCurrentMonth: cur.Month() == time.Month(month) && cur.Year() == year,
				IsToday:        date == today,
				IsPast:         date < today,
				IsSelected:     selectedDates[date],
				IsException:    exceptionDates[date],
			}
			cur = cur.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)

		// Done once the next row starts outside the target month.
		if cur.Month() != time.Month(month) || cur.Year() != year {
			break
		}
	}
	return weeks
}
