package booking

import (
	"context"
	"time"

	"medibook/models"
)

// BookingService is the patient-facing surface of the booking engine.
type BookingService interface {
	BookAppointment(ctx context.Context, patientID string, req models.BookingRequest) (*models.Appointment, error)
	ListBookedTimes(ctx context.Context, doctorID, date string) ([]string, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID string) error
	UpdateStatus(ctx context.Context, appointmentID, status string) error
	UpdateAttendance(ctx context.Context, appointmentID, attendance string) error
}

// ReminderScheduler enqueues a reminder to fire at the given time.
type ReminderScheduler interface {
	Schedule(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}
