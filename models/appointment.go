package models

import "time"

// Appointment statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Attendance markings.
const (
	AttendancePresent   = "present"
	AttendanceAbsent    = "absent"
	AttendanceNotMarked = "not_marked"
)

// Appointment represents a booked slot on a doctor's calendar.
type Appointment struct {
	ID                string    `bson:"id" json:"id"`
	DoctorID          string    `bson:"doctorId" json:"doctorId"`
	PatientID         string    `bson:"patientId" json:"patientId"`
	Date              string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time              string    `bson:"time" json:"time"` // "HH:MM", 24-hour
	DurationMinutes   int       `bson:"durationMinutes" json:"durationMinutes"`
	Status            string    `bson:"status" json:"status"`
	Attendance        string    `bson:"attendance" json:"attendance"`
	IsBookingForOther bool      `bson:"isBookingForOther" json:"isBookingForOther"`
	PatientName       string    `bson:"patientName" json:"patientName"`
	PatientPhone      string    `bson:"patientPhone" json:"patientPhone"`
	PatientAge        int       `bson:"patientAge" json:"patientAge"`
	Reason            string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the payload a patient submits to book a slot.
type BookingRequest struct {
	DoctorID          string `json:"doctorId" binding:"required"`
	Date              string `json:"date" binding:"required"`
	Time              string `json:"time" binding:"required"`
	PatientAge        int    `json:"patientAge"`
	IsBookingForOther bool   `json:"isBookingForOther"`
	PatientName       string `json:"patientName,omitempty"`
	PatientPhone      string `json:"patientPhone,omitempty"`
	Reason            string `json:"reason,omitempty"`
}
