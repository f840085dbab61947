package doctorRepo

import (
	"context"
	"errors"

	"medibook/models"
)

// ErrNotFound is returned when no doctor matches the given id.
var ErrNotFound = errors.New("doctor not found")

// DoctorRepository is the persistence boundary for physician profiles and
// their embedded availability configuration.
type DoctorRepository interface {
	Create(ctx context.Context, doc *models.Doctor) error
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)

	// Availability mutations. SetWorkTimeRules is a full replace of the rule
	// set, matching the PUT semantics of the configuration endpoint.
	SetWorkTimeRules(ctx context.Context, doctorID string, rules []models.WorkTimeRule) error
	SetSlotDuration(ctx context.Context, doctorID string, minutes int) error
	AddExceptionDay(ctx context.Context, doctorID string, exc models.ExceptionDay) error
	RemoveExceptionDay(ctx context.Context, doctorID, date string) error

	EnsureIndexes() error
}
