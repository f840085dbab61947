package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/services/notification"
	"medibook/utils"
)

// DefaultBookingEngine validates and commits bookings against concurrent
// demand. The repository's CreateIfAbsent is the only serialization point;
// everything before it is advisory.
type DefaultBookingEngine struct {
	Repo                appointmentRepo.AppointmentRepository
	DoctorRepo          doctorRepo.DoctorRepository
	Notification        notification.NotificationService
	Reminders           ReminderScheduler
	ReminderLeadMinutes int
}

// BookAppointment runs the full booking transaction for one slot request.
func (e *DefaultBookingEngine) BookAppointment(
	ctx context.Context,
	patientID string,
	req models.BookingRequest,
) (*models.Appointment, error) {
	logger := utils.GetLogger()

	doc, err := e.DoctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, NewSlotUnavailable(fmt.Sprintf("doctor %s not found", req.DoctorID))
		}
		return nil, NewPersistenceUnavailable(fmt.Sprintf("failed to load doctor: %v", err))
	}

	booked, err := e.ListBookedTimes(ctx, req.DoctorID, req.Date)
	if err != nil {
		return nil, err
	}
	bookedSet := make(map[string]bool, len(booked))
	for _, t := range booked {
		bookedSet[t] = true
	}

	appt, err := ValidateBooking(doc.Availability, req, patientID, bookedSet, time.Now())
	if err != nil {
		return nil, err
	}

	// The advisory bookedSet check above can lose a race; the unique index
	// behind CreateIfAbsent is authoritative. SlotTaken is surfaced as-is and
	// never retried with a different slot.
	if err := e.Repo.CreateIfAbsent(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			return nil, NewSlotTaken(fmt.Sprintf("slot %s on %s was booked concurrently", req.Time, req.Date))
		}
		return nil, NewPersistenceUnavailable(fmt.Sprintf("failed to persist appointment: %v", err))
	}

	logger.Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("doctorID", appt.DoctorID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
	)

	// Side effects run out-of-band; their failure never rolls back the booking.
	go e.dispatchBookingSideEffects(*appt)

	return appt, nil
}

func (e *DefaultBookingEngine) dispatchBookingSideEffects(appt models.Appointment) {
	logger := utils.GetLogger()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic in booking side effects", zap.Any("error", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if e.Notification != nil {
		data := map[string]string{
			"appointmentId": appt.ID,
			"date":          appt.Date,
			"time":          appt.Time,
		}
		body := fmt.Sprintf("New booking for %s at %s", appt.Date, appt.Time)
		if err := e.Notification.SendDoctorPushNotification(ctx, appt.DoctorID, "New appointment", body, data); err != nil {
			logger.Warn("doctor notification failed", zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	if e.Reminders != nil {
		if fireAt, ok := e.reminderFireTime(appt); ok {
			payload := models.ReminderPayload{
				AppointmentID: appt.ID,
				RecipientID:   appt.PatientID,
				Target:        models.TargetPatient,
				Title:         "Upcoming appointment",
				Body:          fmt.Sprintf("Your appointment is at %s on %s", appt.Time, appt.Date),
				FireDate:      fireAt.Format(time.RFC3339),
			}
			if err := e.Reminders.Schedule(ctx, payload, fireAt); err != nil {
				logger.Warn("reminder scheduling failed", zap.String("appointmentID", appt.ID), zap.Error(err))
			}
		}
	}
}

// reminderFireTime computes the reminder moment from the appointment's local
// wall-clock date and time. Reminders already in the past are skipped.
func (e *DefaultBookingEngine) reminderFireTime(appt models.Appointment) (time.Time, bool) {
	start, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.Time, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	lead := e.ReminderLeadMinutes
	if lead <= 0 {
		lead = 60
	}
	fireAt := start.Add(-time.Duration(lead) * time.Minute)
	if fireAt.Before(time.Now()) {
		return time.Time{}, false
	}
	return fireAt, true
}

// ListBookedTimes returns the non-cancelled booked times for a doctor and
// date. Clients use it to grey out taken slots before submitting; the server
// stays authoritative through CreateIfAbsent.
func (e *DefaultBookingEngine) ListBookedTimes(ctx context.Context, doctorID, date string) ([]string, error) {
	appts, err := e.Repo.ListByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, NewPersistenceUnavailable(fmt.Sprintf("failed to list bookings: %v", err))
	}
	var times []string
	for _, a := range appts {
		if a.Status == models.StatusCancelled {
			continue
		}
		times = append(times, a.Time)
	}
	return times, nil
}

func (e *DefaultBookingEngine) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	appts, err := e.Repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, NewPersistenceUnavailable(fmt.Sprintf("failed to list patient bookings: %v", err))
	}
	return appts, nil
}

// CancelAppointment transitions the appointment to cancelled. Repeated
// cancellation is a no-op success.
func (e *DefaultBookingEngine) CancelAppointment(ctx context.Context, appointmentID string) error {
	if err := e.Repo.Cancel(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return err
		}
		return NewPersistenceUnavailable(fmt.Sprintf("failed to cancel appointment: %v", err))
	}
	return nil
}

func (e *DefaultBookingEngine) UpdateStatus(ctx context.Context, appointmentID, status string) error {
	switch status {
	case models.StatusPending, models.StatusConfirmed, models.StatusCancelled, models.StatusCompleted:
	default:
		return fmt.Errorf("invalid status %q", status)
	}
	if err := e.Repo.UpdateStatus(ctx, appointmentID, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return err
		}
		return NewPersistenceUnavailable(fmt.Sprintf("failed to update status: %v", err))
	}
	return nil
}

func (e *DefaultBookingEngine) UpdateAttendance(ctx context.Context, appointmentID, attendance string) error {
	switch attendance {
	case models.AttendancePresent, models.AttendanceAbsent, models.AttendanceNotMarked:
	default:
		return fmt.Errorf("invalid attendance %q", attendance)
	}
	if err := e.Repo.UpdateAttendance(ctx, appointmentID, attendance); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return err
		}
		return NewPersistenceUnavailable(fmt.Sprintf("failed to update attendance: %v", err))
	}
	return nil
}
