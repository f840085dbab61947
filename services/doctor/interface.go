package doctor

import (
	"context"

	"medibook/models"
)

// DoctorService owns physician profiles and their availability configuration.
type DoctorService interface {
	RegisterDoctor(ctx context.Context, doc *models.Doctor) error
	GetDoctor(ctx context.Context, id string) (*models.Doctor, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)

	SetWorkTimeRules(ctx context.Context, doctorID string, rules []models.WorkTimeRule) error
	SetSlotDuration(ctx context.Context, doctorID string, minutes int) error
	AddExceptionDay(ctx context.Context, doctorID string, exc models.ExceptionDay) error
	RemoveExceptionDay(ctx context.Context, doctorID, date string) error
}

// SlotCacheInvalidator drops cached slot computations for a doctor after an
// availability mutation.
type SlotCacheInvalidator interface {
	InvalidateDoctor(ctx context.Context, doctorID string) error
}
