package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"

	appointmentRepo "medibook/database/repository/appointment"
	"medibook/config"
	"medibook/models"
	"medibook/services/calendar"
	"medibook/utils"
)

// Service assembles the doctor-facing calendar from stored appointments.
// Aggregation is a presentation aid: repository failures degrade to empty
// results instead of propagating.
type Service struct {
	Repo appointmentRepo.AppointmentRepository
}

// MonthCalendar is a rendered month with per-date appointment summaries.
type MonthCalendar struct {
	Weeks     []models.Week                `json:"weeks"`
	Summaries map[string]models.DaySummary `json:"summaries"`
}

// CalendarForMonth renders the doctor's month grid with dot summaries.
func (s *Service) CalendarForMonth(ctx context.Context, doctorID string, year, month int, exceptionDates map[string]bool) MonthCalendar {
	logger := utils.GetLogger()

	appts, err := s.Repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		logger.Warn("calendar aggregation degraded to empty",
			zap.String("doctorID", doctorID), zap.Error(err))
		appts = nil
	}

	summaries := AggregateByDate(appts)
	weekStart := time.Weekday(config.AppConfig.CalendarWeekStart)
	weeks := calendar.BuildMonthGrid(year, month, weekStart, exceptionDates, nil)

	return MonthCalendar{Weeks: weeks, Summaries: summaries}
}

// StatsForDoctorDate computes attendance stats for one date, zeroed when the
// store is unreachable.
func (s *Service) StatsForDoctorDate(ctx context.Context, doctorID, date string) models.AttendanceStats {
	logger := utils.GetLogger()

	appts, err := s.Repo.ListByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		logger.Warn("attendance stats degraded to zero",
			zap.String("doctorID", doctorID), zap.String("date", date), zap.Error(err))
		return models.AttendanceStats{}
	}
	return AttendanceStats(appts)
}
