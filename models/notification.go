package models

// Reminder targets.
const (
	TargetPatient = "patient"
	TargetDoctor  = "doctor"
)

// ReminderPayload is the message enqueued for a pre-appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	RecipientID   string `json:"recipientId"`
	Target        string `json:"target"` // "patient" or "doctor"
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}
