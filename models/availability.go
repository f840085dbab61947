package models

// Exception scopes.
const (
	ExceptionFullDay    = "full_day"
	ExceptionPartialDay = "partial_day"
)

// DefaultSlotDuration is applied to doctors who never configured one.
const DefaultSlotDuration = 30

// AllowedSlotDurations is the enumerated set a doctor may pick from, in minutes.
var AllowedSlotDurations = []int{5, 10, 15, 20, 30, 45, 60}

// WorkTimeRule is a recurring weekly availability window for one weekday.
// A doctor may own several rules for the same weekday (split shifts).
type WorkTimeRule struct {
	Weekday int    `bson:"weekday" json:"weekday"` // 0=Sunday .. 6=Saturday
	From    string `bson:"from" json:"from"`       // "HH:MM"
	To      string `bson:"to" json:"to"`           // "HH:MM"
}

// ExceptionDay removes or restricts availability on a single calendar date.
// Full-day exceptions drop the date entirely; partial-day exceptions carve the
// [From, To) window out of the generated slots.
type ExceptionDay struct {
	Date   string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Scope  string `bson:"scope" json:"scope"`
	From   string `bson:"from,omitempty" json:"from,omitempty"`
	To     string `bson:"to,omitempty" json:"to,omitempty"`
	Reason string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// AvailabilityConfig is a doctor's full availability configuration.
type AvailabilityConfig struct {
	WorkTimeRules       []WorkTimeRule `bson:"workTimeRules" json:"workTimeRules"`
	ExceptionDays       []ExceptionDay `bson:"exceptionDays" json:"exceptionDays"`
	SlotDurationMinutes int            `bson:"slotDurationMinutes" json:"slotDurationMinutes"`
}

// SlotDuration returns the configured duration, falling back to the default.
func (c AvailabilityConfig) SlotDuration() int {
	if c.SlotDurationMinutes <= 0 {
		return DefaultSlotDuration
	}
	return c.SlotDurationMinutes
}

// SetWorkTimesRequest is the full-replace payload for a doctor's weekly rules.
type SetWorkTimesRequest struct {
	WorkTimeRules []WorkTimeRule `json:"workTimeRules" binding:"required"`
}

// SetSlotDurationRequest updates the doctor's slot length.
type SetSlotDurationRequest struct {
	SlotDurationMinutes int `json:"slotDurationMinutes" binding:"required"`
}
