package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"medibook/models"
	"medibook/services/availability"
)

const (
	minPatientAge = 1
	maxPatientAge = 120
)

// ValidateBooking checks the requested slot against the doctor's availability
// and the already-booked times for that (doctor, date), then builds the
// normalized Appointment record. bookedTimes must exclude cancelled bookings.
// It performs no I/O; callers supply the current configuration and bookings.
func ValidateBooking(
	cfg models.AvailabilityConfig,
	req models.BookingRequest,
	patientID string,
	bookedTimes map[string]bool,
	now time.Time,
) (*models.Appointment, error) {
	if !availability.IsDateAvailable(cfg, req.Date) {
		return nil, NewSlotUnavailable(fmt.Sprintf("date %s is not available", req.Date))
	}
	if !availability.HasSlot(cfg, req.Date, req.Time) {
		return nil, NewSlotUnavailable(fmt.Sprintf("time %s is not a bookable slot on %s", req.Time, req.Date))
	}
	if bookedTimes[req.Time] {
		return nil, NewSlotTaken(fmt.Sprintf("slot %s on %s is already booked", req.Time, req.Date))
	}
	if req.PatientAge < minPatientAge || req.PatientAge > maxPatientAge {
		return nil, NewInvalidPatientInfo(fmt.Sprintf("patient age %d is outside [%d,%d]", req.PatientAge, minPatientAge, maxPatientAge))
	}
	if req.IsBookingForOther {
		if strings.TrimSpace(req.PatientName) == "" {
			return nil, NewInvalidPatientInfo("patient name is required when booking for another person")
		}
		if strings.TrimSpace(req.PatientPhone) == "" {
			return nil, NewInvalidPatientInfo("patient phone is required when booking for another person")
		}
	}

	// Each appointment freezes the doctor's slot duration as of booking time;
	// later configuration changes never rewrite existing records.
	return &models.Appointment{
		ID:                uuid.New().String(),
		DoctorID:          req.DoctorID,
		PatientID:         patientID,
		Date:              req.Date,
		Time:              req.Time,
		DurationMinutes:   cfg.SlotDuration(),
		Status:            models.StatusPending,
		Attendance:        models.AttendanceNotMarked,
		IsBookingForOther: req.IsBookingForOther,
		PatientName:       req.PatientName,
		PatientPhone:      req.PatientPhone,
		PatientAge:        req.PatientAge,
		Reason:            req.Reason,
		CreatedAt:         now,
	}, nil
}
