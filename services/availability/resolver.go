// Package availability answers "is date D bookable" and "which start times are
// candidates" for a doctor's configured rules, exceptions, and slot duration.
package availability

import (
	"sort"
	"time"

	"medibook/models"
	"medibook/services/calendar"
	"medibook/utils"
)

func weekdayOf(date string) (int, bool) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, false
	}
	return int(d.Weekday()), true
}

func fullDayException(cfg models.AvailabilityConfig, date string) bool {
	for _, exc := range cfg.ExceptionDays {
		if exc.Date == date && exc.Scope == models.ExceptionFullDay {
			return true
		}
	}
	return false
}

// IsDateAvailable reports whether date is bookable at all. A full-day
// exception always wins over a matching work-time rule; a date with no rule
// for its weekday is never available. Partial-day exceptions do not make the
// date unavailable on their own.
func IsDateAvailable(cfg models.AvailabilityConfig, date string) bool {
	wd, ok := weekdayOf(date)
	if !ok {
		return false
	}
	if fullDayException(cfg, date) {
		return false
	}
	for _, rule := range cfg.WorkTimeRules {
		if rule.Weekday == wd {
			return true
		}
	}
	return false
}

// blockedByPartialException reports whether the slot interval
// [start, start+duration) intersects any partial exception window on date.
func blockedByPartialException(cfg models.AvailabilityConfig, date string, slotStart, duration int) bool {
	for _, exc := range cfg.ExceptionDays {
		if exc.Date != date || exc.Scope != models.ExceptionPartialDay {
			continue
		}
		from, err := utils.ParseHHMM(exc.From)
		if err != nil {
			continue
		}
		to, err := utils.ParseHHMM(exc.To)
		if err != nil {
			continue
		}
		if slotStart < to && slotStart+duration > from {
			return true
		}
	}
	return false
}

// CandidateSlots returns the bookable start times for date, one run of
// generated slots per matching rule, concatenated in rule declaration order.
// Overlapping shifts may produce duplicate times here; the store's uniqueness
// constraint still prevents double-booking, and DisplaySlots dedupes for UX.
func CandidateSlots(cfg models.AvailabilityConfig, date string) []string {
	if !IsDateAvailable(cfg, date) {
		return nil
	}
	wd, _ := weekdayOf(date)
	duration := cfg.SlotDuration()

	var slots []string
	for _, rule := range cfg.WorkTimeRules {
		if rule.Weekday != wd {
			continue
		}
		for _, s := range calendar.GenerateSlots(rule.From, rule.To, duration) {
			start, err := utils.ParseHHMM(s)
			if err != nil {
				continue
			}
			if blockedByPartialException(cfg, date, start, duration) {
				continue
			}
			slots = append(slots, s)
		}
	}
	return slots
}

// HasSlot reports whether t is among the candidate slots for date.
func HasSlot(cfg models.AvailabilityConfig, date, t string) bool {
	for _, s := range CandidateSlots(cfg, date) {
		if s == t {
			return true
		}
	}
	return false
}

// DisplaySlots is the advisory/UX view: candidates deduplicated by time value
// and sorted by minutes since midnight.
func DisplaySlots(cfg models.AvailabilityConfig, date string) []string {
	seen := make(map[string]bool)
	var slots []string
	for _, s := range CandidateSlots(cfg, date) {
		if seen[s] {
			continue
		}
		seen[s] = true
		slots = append(slots, s)
	}
	sort.Slice(slots, func(i, j int) bool {
		a, _ := utils.ParseHHMM(slots[i])
		b, _ := utils.ParseHHMM(slots[j])
		return a < b
	})
	return slots
}

// AvailableDatesWindow lists the available dates in [from, from+days). Used
// only to annotate calendars with availability dots, never as a booking
// cutoff: the resolver itself does not reject far-out dates.
func AvailableDatesWindow(cfg models.AvailabilityConfig, from time.Time, days int) map[string]bool {
	dates := make(map[string]bool)
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	for i := 0; i < days; i++ {
		d := day.AddDate(0, 0, i)
		date := d.Format("2006-01-02")
		if IsDateAvailable(cfg, date) {
			dates[date] = true
		}
	}
	return dates
}
