// Package schedule builds the physician-side calendar: per-date dot
// summaries, time-ordered appointment lists, and attendance statistics.
package schedule

import (
	"sort"

	"medibook/models"
	"medibook/utils"
)

// dotOrder fixes the display precedence of dot categories.
var dotOrder = []string{
	models.DotConfirmed,
	models.DotPending,
	models.DotCancelled,
	models.DotPresent,
	models.DotAbsent,
}

func dotCategories(a models.Appointment) []string {
	var cats []string
	switch a.Status {
	case models.StatusConfirmed, models.StatusCompleted:
		cats = append(cats, models.DotConfirmed)
	case models.StatusPending:
		cats = append(cats, models.DotPending)
	case models.StatusCancelled:
		cats = append(cats, models.DotCancelled)
	}
	switch a.Attendance {
	case models.AttendancePresent:
		cats = append(cats, models.DotPresent)
	case models.AttendanceAbsent:
		cats = append(cats, models.DotAbsent)
	}
	return cats
}

// SortByTime orders appointments ascending by minutes since midnight.
// "09:05" sorts before "10:00"; a lexical sort would be wrong for
// single-digit hours elsewhere, so times are compared numerically.
func SortByTime(appts []models.Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		a, errA := utils.ParseHHMM(appts[i].Time)
		b, errB := utils.ParseHHMM(appts[j].Time)
		if errA != nil || errB != nil {
			return appts[i].Time < appts[j].Time
		}
		return a < b
	})
}

// AggregateByDate groups appointments into per-date summaries. Each date
// shows at most one dot per category and at most MaxDotsPerDate dots total,
// no matter how many appointments share a category.
func AggregateByDate(appts []models.Appointment) map[string]models.DaySummary {
	byDate := make(map[string][]models.Appointment)
	for _, a := range appts {
		byDate[a.Date] = append(byDate[a.Date], a)
	}

	summaries := make(map[string]models.DaySummary, len(byDate))
	for date, dayAppts := range byDate {
		SortByTime(dayAppts)

		present := make(map[string]bool)
		for _, a := range dayAppts {
			for _, cat := range dotCategories(a) {
				present[cat] = true
			}
		}
		var dots []string
		for _, cat := range dotOrder {
			if !present[cat] {
				continue
			}
			dots = append(dots, cat)
			if len(dots) == models.MaxDotsPerDate {
				break
			}
		}

		summaries[date] = models.DaySummary{
			Date:         date,
			Dots:         dots,
			Appointments: dayAppts,
		}
	}
	return summaries
}

// SplitUpcoming partitions appointments around today's date. Classification
// is date-granular, a lexical compare of "YYYY-MM-DD" strings, so today's
// own appointments land on the past side.
func SplitUpcoming(appts []models.Appointment, today string) (upcoming, past []models.Appointment) {
	for _, a := range appts {
		if a.Date > today {
			upcoming = append(upcoming, a)
		} else {
			past = append(past, a)
		}
	}
	return upcoming, past
}
