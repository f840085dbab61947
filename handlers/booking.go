package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
	"medibook/services/booking"
	"medibook/services/schedule"
	"medibook/utils"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// bookingErrorStatus maps booking error codes to HTTP statuses.
func bookingErrorStatus(err error) int {
	switch booking.CodeOf(err) {
	case booking.CodeSlotTaken:
		return http.StatusConflict
	case booking.CodeSlotUnavailable, booking.CodeInvalidPatientInfo:
		return http.StatusUnprocessableEntity
	case booking.CodePersistenceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// CreateAppointment handles POST /api/appointments.
func (h *BookingHandler) CreateAppointment(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
		return
	}

	patientID := c.GetString("subjectID")
	if patientID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "missing authenticated subject", "")
		return
	}

	appt, err := h.Service.BookAppointment(c.Request.Context(), patientID, req)
	if err != nil {
		status := bookingErrorStatus(err)
		if status == http.StatusInternalServerError {
			h.Logger.Error("booking failed", zap.Error(err))
		}
		utils.JSONError(c, status, "booking rejected", err.Error())
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListBookedTimes handles GET /api/doctors/:id/booked/:date. Advisory only:
// clients grey out taken slots, the store stays authoritative.
func (h *BookingHandler) ListBookedTimes(c *gin.Context) {
	doctorID := c.Param("id")
	date := c.Param("date")

	times, err := h.Service.ListBookedTimes(c.Request.Context(), doctorID, date)
	if err != nil {
		utils.JSONError(c, bookingErrorStatus(err), "failed to list booked times", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctorId": doctorID, "date": date, "bookedTimes": times})
}

// ListPatientAppointments handles GET /api/appointments/mine for the
// authenticated patient.
func (h *BookingHandler) ListPatientAppointments(c *gin.Context) {
	patientID := c.GetString("subjectID")
	if patientID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "missing authenticated subject", "")
		return
	}

	appts, err := h.Service.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		utils.JSONError(c, bookingErrorStatus(err), "failed to list appointments", err.Error())
		return
	}
	today := time.Now().Format("2006-01-02")
	upcoming, past := schedule.SplitUpcoming(appts, today)
	c.JSON(http.StatusOK, gin.H{"upcoming": upcoming, "past": past})
}

// CancelAppointment handles DELETE /api/appointments/:id. Cancelling an
// already-cancelled appointment still returns 200.
func (h *BookingHandler) CancelAppointment(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.CancelAppointment(c.Request.Context(), id); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "appointment not found", id)
			return
		}
		utils.JSONError(c, bookingErrorStatus(err), "failed to cancel appointment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": models.StatusCancelled})
}

// UpdateStatus handles PATCH /api/appointments/:id/status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid status payload", err.Error())
		return
	}

	if err := h.Service.UpdateStatus(c.Request.Context(), id, input.Status); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "appointment not found", id)
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "failed to update status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": input.Status})
}

// UpdateAttendance handles PATCH /api/appointments/:id/attendance.
func (h *BookingHandler) UpdateAttendance(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Attendance string `json:"attendance" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid attendance payload", err.Error())
		return
	}

	if err := h.Service.UpdateAttendance(c.Request.Context(), id, input.Attendance); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "appointment not found", id)
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "failed to update attendance", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "attendance": input.Attendance})
}
