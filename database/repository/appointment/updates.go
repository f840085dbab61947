package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"medibook/models"
)

// setField performs a field-level update so concurrent status and attendance
// writes never clobber the rest of the record.
func (r *MongoAppointmentRepo) setField(ctx context.Context, id, field, value string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{field: value}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update %s for appointment %s: %w", field, id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.setField(ctx, id, "status", status)
}

func (r *MongoAppointmentRepo) UpdateAttendance(ctx context.Context, id, attendance string) error {
	return r.setField(ctx, id, "attendance", attendance)
}

// Cancel marks the appointment cancelled. Cancelling an already-cancelled
// appointment matches the same document and sets the same value, so repeated
// calls are no-op successes.
func (r *MongoAppointmentRepo) Cancel(ctx context.Context, id string) error {
	return r.setField(ctx, id, "status", models.StatusCancelled)
}
