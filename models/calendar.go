package models

// DayCell is one day in a rendered month grid.
type DayCell struct {
	Date           string `json:"date"` // "YYYY-MM-DD"
	Day            int    `json:"day"`
	IsCurrentMonth bool   `json:"isCurrentMonth"`
	IsToday        bool   `json:"isToday"`
	IsPast         bool   `json:"isPast"`
	IsSelected     bool   `json:"isSelected"`
	IsException    bool   `json:"isException"`
}

// Week is a single 7-cell row of a month grid.
type Week [7]DayCell

// Dot categories shown on a doctor's calendar, at most one dot per category per date.
const (
	DotConfirmed = "confirmed"
	DotPending   = "pending"
	DotCancelled = "cancelled"
	DotPresent   = "present"
	DotAbsent    = "absent"
)

// MaxDotsPerDate caps how many category dots a single date may display.
const MaxDotsPerDate = 3

// DaySummary is the per-date aggregation backing the doctor's calendar view.
type DaySummary struct {
	Date         string        `json:"date"`
	Dots         []string      `json:"dots"`
	Appointments []Appointment `json:"appointments"`
}

// AttendanceStats summarizes attendance for a date or range.
type AttendanceStats struct {
	Total          int `json:"total"`
	Present        int `json:"present"`
	Absent         int `json:"absent"`
	NotMarked      int `json:"notMarked"`
	AttendanceRate int `json:"attendanceRate"` // rounded percentage, 0 when Total is 0
}
