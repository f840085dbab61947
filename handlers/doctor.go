package handlers

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/services/availability"
	"medibook/services/booking"
	"medibook/services/doctor"
	"medibook/services/schedule"
	"medibook/utils"
)

// DoctorHandler exposes physician profiles, availability configuration, and
// the doctor-side calendar over HTTP.
type DoctorHandler struct {
	Doctors      doctor.DoctorService
	Availability *availability.Service
	Bookings     booking.BookingService
	Schedule     *schedule.Service
	Logger       *zap.Logger
}

func NewDoctorHandler(
	doctors doctor.DoctorService,
	avail *availability.Service,
	bookings booking.BookingService,
	sched *schedule.Service,
	logger *zap.Logger,
) *DoctorHandler {
	return &DoctorHandler{
		Doctors:      doctors,
		Availability: avail,
		Bookings:     bookings,
		Schedule:     sched,
		Logger:       logger,
	}
}

// RegisterDoctor handles POST /api/doctors.
func (h *DoctorHandler) RegisterDoctor(c *gin.Context) {
	var doc models.Doctor
	if err := c.ShouldBindJSON(&doc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid doctor payload", err.Error())
		return
	}
	if err := h.Doctors.RegisterDoctor(c.Request.Context(), &doc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to register doctor", err.Error())
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// GetDoctor handles GET /api/doctors/:id.
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	id := c.Param("id")
	doc, err := h.Doctors.GetDoctor(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "doctor not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ListDoctors handles GET /api/doctors.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	docs, err := h.Doctors.ListDoctors(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list doctors", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": docs})
}

// GetAvailability handles GET /api/doctors/:id/availability.
func (h *DoctorHandler) GetAvailability(c *gin.Context) {
	id := c.Param("id")
	doc, err := h.Doctors.GetDoctor(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "doctor not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, doc.Availability)
}

// SetWorkTimes handles PUT /api/doctors/:id/availability/worktimes.
// Full replace of the weekly rule set.
func (h *DoctorHandler) SetWorkTimes(c *gin.Context) {
	id := c.Param("id")
	var req models.SetWorkTimesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid work times payload", err.Error())
		return
	}
	if err := h.Doctors.SetWorkTimeRules(c.Request.Context(), id, req.WorkTimeRules); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "doctor not found", id)
			return
		}
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to set work times", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "workTimeRules": req.WorkTimeRules})
}

// SetSlotDuration handles PUT /api/doctors/:id/availability/slot-duration.
func (h *DoctorHandler) SetSlotDuration(c *gin.Context) {
	id := c.Param("id")
	var req models.SetSlotDurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid slot duration payload", err.Error())
		return
	}
	if err := h.Doctors.SetSlotDuration(c.Request.Context(), id, req.SlotDurationMinutes); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "doctor not found", id)
			return
		}
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to set slot duration", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "slotDurationMinutes": req.SlotDurationMinutes})
}

// AddException handles POST /api/doctors/:id/availability/exceptions.
func (h *DoctorHandler) AddException(c *gin.Context) {
	id := c.Param("id")
	var exc models.ExceptionDay
	if err := c.ShouldBindJSON(&exc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid exception payload", err.Error())
		return
	}
	if err := h.Doctors.AddExceptionDay(c.Request.Context(), id, exc); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "doctor not found", id)
			return
		}
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to add exception", err.Error())
		return
	}
	c.JSON(http.StatusCreated, exc)
}

// RemoveException handles DELETE /api/doctors/:id/availability/exceptions/:date.
func (h *DoctorHandler) RemoveException(c *gin.Context) {
	id := c.Param("id")
	date := c.Param("date")
	if err := h.Doctors.RemoveExceptionDay(c.Request.Context(), id, date); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "doctor not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to remove exception", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "date": date})
}

// GetAvailableDates handles GET /api/doctors/:id/availability/dates. Returns
// the bookable dates over the lookahead window, for calendar dot annotation.
func (h *DoctorHandler) GetAvailableDates(c *gin.Context) {
	id := c.Param("id")
	doc, err := h.Doctors.GetDoctor(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "doctor not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve available dates", err.Error())
		return
	}

	window := availability.AvailableDatesWindow(doc.Availability, time.Now(), utils.LookaheadDays)
	dates := make([]string, 0, len(window))
	for d := range window {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	c.JSON(http.StatusOK, gin.H{"doctorId": id, "dates": dates})
}

// GetAvailableSlots handles GET /api/doctors/:id/slots/:date. Returns the
// doctor's display slots with already-booked times removed; advisory only.
func (h *DoctorHandler) GetAvailableSlots(c *gin.Context) {
	id := c.Param("id")
	date := c.Param("date")

	slots, err := h.Availability.DisplaySlotsForDoctor(c.Request.Context(), id, date)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "doctor not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve slots", err.Error())
		return
	}

	booked, err := h.Bookings.ListBookedTimes(c.Request.Context(), id, date)
	if err != nil {
		// Degrade to the raw availability view rather than failing the read.
		h.Logger.Warn("booked-times lookup failed, returning unfiltered slots",
			zap.String("doctorID", id), zap.String("date", date), zap.Error(err))
		booked = nil
	}
	bookedSet := make(map[string]bool, len(booked))
	for _, t := range booked {
		bookedSet[t] = true
	}

	var open []string
	for _, s := range slots {
		if !bookedSet[s] {
			open = append(open, s)
		}
	}
	c.JSON(http.StatusOK, gin.H{"doctorId": id, "date": date, "slots": open})
}

// GetMonthCalendar handles GET /api/doctors/:id/calendar/:year/:month.
func (h *DoctorHandler) GetMonthCalendar(c *gin.Context) {
	id := c.Param("id")
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid year", c.Param("year"))
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		utils.JSONError(c, http.StatusBadRequest, "invalid month", c.Param("month"))
		return
	}

	exceptions := make(map[string]bool)
	if doc, err := h.Doctors.GetDoctor(c.Request.Context(), id); err == nil {
		for _, exc := range doc.Availability.ExceptionDays {
			exceptions[exc.Date] = true
		}
	}

	cal := h.Schedule.CalendarForMonth(c.Request.Context(), id, year, month, exceptions)
	c.JSON(http.StatusOK, cal)
}

// GetAttendanceStats handles GET /api/doctors/:id/stats/:date.
func (h *DoctorHandler) GetAttendanceStats(c *gin.Context) {
	id := c.Param("id")
	date := c.Param("date")
	stats := h.Schedule.StatsForDoctorDate(c.Request.Context(), id, date)
	c.JSON(http.StatusOK, stats)
}
