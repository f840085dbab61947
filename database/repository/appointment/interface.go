package appointmentRepo

import (
	"context"
	"errors"

	"medibook/models"
)

// ErrDuplicateSlot is returned by CreateIfAbsent when another non-cancelled
// appointment already holds the same (doctorId, date, time).
var ErrDuplicateSlot = errors.New("slot already booked")

// ErrNotFound is returned when no appointment matches the given id.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository is the persistence boundary for booking records.
type AppointmentRepository interface {
	// CreateIfAbsent inserts the appointment, relying on the store's unique
	// index on (doctorId, date, time) for non-cancelled records. It is the
	// single point that serializes concurrent bookings of the same slot.
	CreateIfAbsent(ctx context.Context, appt *models.Appointment) error

	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)

	// Status/attendance updates are field-level and idempotent. Appointments
	// are never hard-deleted; Cancel is a status transition.
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateAttendance(ctx context.Context, id, attendance string) error
	Cancel(ctx context.Context, id string) error

	EnsureIndexes() error
}
