package availability

import (
	"reflect"
	"testing"
	"time"

	"medibook/models"
)

// 2025-06-09 is a Monday, 2025-06-10 a Tuesday.
func mondayConfig() models.AvailabilityConfig {
	return models.AvailabilityConfig{
		WorkTimeRules: []models.WorkTimeRule{
			{Weekday: 1, From: "09:00", To: "12:00"},
		},
		SlotDurationMinutes: 30,
	}
}

func TestIsDateAvailable_NoRuleForWeekday(t *testing.T) {
	cfg := mondayConfig()
	if IsDateAvailable(cfg, "2025-06-10") {
		t.Error("Tuesday should be unavailable with only a Monday rule")
	}
	if !IsDateAvailable(cfg, "2025-06-09") {
		t.Error("Monday should be available")
	}
}

func TestIsDateAvailable_FullDayExceptionWins(t *testing.T) {
	cfg := mondayConfig()
	cfg.ExceptionDays = []models.ExceptionDay{
		{Date: "2025-06-09", Scope: models.ExceptionFullDay, Reason: "vacation"},
	}
	if IsDateAvailable(cfg, "2025-06-09") {
		t.Error("full-day exception must override a matching work-time rule")
	}
	// Other Mondays stay available.
	if !IsDateAvailable(cfg, "2025-06-16") {
		t.Error("exception must only remove its own date")
	}
}

func TestIsDateAvailable_PartialExceptionKeepsDate(t *testing.T) {
	cfg := mondayConfig()
	cfg.ExceptionDays = []models.ExceptionDay{
		{Date: "2025-06-09", Scope: models.ExceptionPartialDay, From: "10:00", To: "11:00"},
	}
	if !IsDateAvailable(cfg, "2025-06-09") {
		t.Error("a partial-day exception must not remove the whole date")
	}
}

func TestIsDateAvailable_MalformedDate(t *testing.T) {
	if IsDateAvailable(mondayConfig(), "junk") {
		t.Error("malformed dates are never available")
	}
}

func TestCandidateSlots_MondayMorning(t *testing.T) {
	got := CandidateSlots(mondayConfig(), "2025-06-09")
	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCandidateSlots_EmptyWhenUnavailable(t *testing.T) {
	cfg := mondayConfig()
	if got := CandidateSlots(cfg, "2025-06-10"); got != nil {
		t.Errorf("no-rule weekday should yield no slots, got %v", got)
	}
	cfg.ExceptionDays = []models.ExceptionDay{{Date: "2025-06-09", Scope: models.ExceptionFullDay}}
	if got := CandidateSlots(cfg, "2025-06-09"); got != nil {
		t.Errorf("full-day exception should yield no slots, got %v", got)
	}
}

func TestCandidateSlots_SplitShiftsKeepDeclarationOrder(t *testing.T) {
	cfg := models.AvailabilityConfig{
		WorkTimeRules: []models.WorkTimeRule{
			{Weekday: 1, From: "14:00", To: "15:00"},
			{Weekday: 1, From: "09:00", To: "10:00"},
		},
		SlotDurationMinutes: 30,
	}
	got := CandidateSlots(cfg, "2025-06-09")
	want := []string{"14:00", "14:30", "09:00", "09:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("candidates must follow rule declaration order, got %v", got)
	}
}

func TestCandidateSlots_OverlappingShiftsNotDeduped(t *testing.T) {
	cfg := models.AvailabilityConfig{
		WorkTimeRules: []models.WorkTimeRule{
			{Weekday: 1, From: "09:00", To: "10:00"},
			{Weekday: 1, From: "09:30", To: "10:30"},
		},
		SlotDurationMinutes: 30,
	}
	got := CandidateSlots(cfg, "2025-06-09")
	want := []string{"09:00", "09:30", "09:30", "10:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("raw candidates keep duplicates from overlapping shifts, got %v", got)
	}
}

func TestCandidateSlots_PartialExceptionExcludesOverlap(t *testing.T) {
	cfg := mondayConfig()
	cfg.ExceptionDays = []models.ExceptionDay{
		{Date: "2025-06-09", Scope: models.ExceptionPartialDay, From: "10:00", To: "11:00"},
	}
	got := CandidateSlots(cfg, "2025-06-09")
	// 09:30 ends exactly at 10:00 so it survives; 10:00 and 10:30 intersect
	// the window; 11:00 starts exactly at its end and survives.
	want := []string{"09:00", "09:30", "11:00", "11:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDisplaySlots_DedupedAndSorted(t *testing.T) {
	cfg := models.AvailabilityConfig{
		WorkTimeRules: []models.WorkTimeRule{
			{Weekday: 1, From: "14:00", To: "15:00"},
			{Weekday: 1, From: "09:00", To: "10:00"},
			{Weekday: 1, From: "09:30", To: "10:30"},
		},
		SlotDurationMinutes: 30,
	}
	got := DisplaySlots(cfg, "2025-06-09")
	want := []string{"09:00", "09:30", "10:00", "14:00", "14:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("display slots must be deduped and time-sorted, got %v", got)
	}
}

func TestHasSlot(t *testing.T) {
	cfg := mondayConfig()
	if !HasSlot(cfg, "2025-06-09", "10:00") {
		t.Error("10:00 should be a candidate")
	}
	if HasSlot(cfg, "2025-06-09", "10:15") {
		t.Error("10:15 is not aligned to the slot grid")
	}
	if HasSlot(cfg, "2025-06-09", "12:00") {
		t.Error("12:00 is the exclusive end of the window")
	}
}

func TestAvailableDatesWindow(t *testing.T) {
	cfg := mondayConfig()
	cfg.ExceptionDays = []models.ExceptionDay{
		{Date: "2025-06-16", Scope: models.ExceptionFullDay},
	}
	from := time.Date(2025, 6, 9, 15, 30, 0, 0, time.Local)
	dates := AvailableDatesWindow(cfg, from, 14)

	if !dates["2025-06-09"] {
		t.Error("window must include its first day")
	}
	if dates["2025-06-16"] {
		t.Error("full-day exception must be excluded from the window")
	}
	if dates["2025-06-10"] {
		t.Error("non-working weekday leaked into the window")
	}
	if len(dates) != 1 {
		t.Errorf("expected exactly one available Monday, got %v", dates)
	}
}
