// File: database/repository/doctor/availability.go
package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"medibook/models"
)

func (r *MongoDoctorRepo) updateAvailability(ctx context.Context, doctorID string, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": doctorID}, update)
	if err != nil {
		return fmt.Errorf("failed to update availability for doctor %s: %w", doctorID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetWorkTimeRules replaces the doctor's entire weekly rule set.
func (r *MongoDoctorRepo) SetWorkTimeRules(ctx context.Context, doctorID string, rules []models.WorkTimeRule) error {
	return r.updateAvailability(ctx, doctorID, bson.M{
		"$set": bson.M{"availability.workTimeRules": rules},
	})
}

func (r *MongoDoctorRepo) SetSlotDuration(ctx context.Context, doctorID string, minutes int) error {
	return r.updateAvailability(ctx, doctorID, bson.M{
		"$set": bson.M{"availability.slotDurationMinutes": minutes},
	})
}

// AddExceptionDay upserts the exception for its date: any existing entry for
// the same date is pulled first so a date carries at most one exception.
func (r *MongoDoctorRepo) AddExceptionDay(ctx context.Context, doctorID string, exc models.ExceptionDay) error {
	if err := r.updateAvailability(ctx, doctorID, bson.M{
		"$pull": bson.M{"availability.exceptionDays": bson.M{"date": exc.Date}},
	}); err != nil {
		return err
	}
	return r.updateAvailability(ctx, doctorID, bson.M{
		"$push": bson.M{"availability.exceptionDays": exc},
	})
}

func (r *MongoDoctorRepo) RemoveExceptionDay(ctx context.Context, doctorID, date string) error {
	return r.updateAvailability(ctx, doctorID, bson.M{
		"$pull": bson.M{"availability.exceptionDays": bson.M{"date": date}},
	})
}
