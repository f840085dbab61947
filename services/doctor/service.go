package doctor

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/services/notification"
	"medibook/utils"
)

// DefaultDoctorService implements DoctorService. Every availability mutation
// invalidates the doctor's cached slot computations and pings the doctor's
// devices about the schedule change.
type DefaultDoctorService struct {
	Repo         doctorRepo.DoctorRepository
	SlotCache    SlotCacheInvalidator
	Notification notification.NotificationService
}

func (s *DefaultDoctorService) RegisterDoctor(ctx context.Context, doc *models.Doctor) error {
	if doc.Name == "" {
		return fmt.Errorf("doctor name is required")
	}
	if err := validateRules(doc.Availability.WorkTimeRules); err != nil {
		return err
	}
	if doc.Availability.SlotDurationMinutes != 0 {
		if err := validateDuration(doc.Availability.SlotDurationMinutes); err != nil {
			return err
		}
	}
	return s.Repo.Create(ctx, doc)
}

func (s *DefaultDoctorService) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultDoctorService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return s.Repo.GetAll(ctx)
}

func validateRules(rules []models.WorkTimeRule) error {
	for i, r := range rules {
		if r.Weekday < 0 || r.Weekday > 6 {
			return fmt.Errorf("rule %d: weekday %d out of range 0..6", i+1, r.Weekday)
		}
		from, err := utils.ParseHHMM(r.From)
		if err != nil {
			return fmt.Errorf("rule %d: %w", i+1, err)
		}
		to, err := utils.ParseHHMM(r.To)
		if err != nil {
			return fmt.Errorf("rule %d: %w", i+1, err)
		}
		if from >= to {
			return fmt.Errorf("rule %d: from %s must be before to %s", i+1, r.From, r.To)
		}
	}
	return nil
}

func validateDuration(minutes int) error {
	for _, d := range models.AllowedSlotDurations {
		if minutes == d {
			return nil
		}
	}
	return fmt.Errorf("slot duration %d not in allowed set %v", minutes, models.AllowedSlotDurations)
}

func validateException(exc models.ExceptionDay) error {
	if _, err := time.Parse("2006-01-02", exc.Date); err != nil {
		return fmt.Errorf("invalid exception date %q", exc.Date)
	}
	switch exc.Scope {
	case models.ExceptionFullDay:
		return nil
	case models.ExceptionPartialDay:
		from, err := utils.ParseHHMM(exc.From)
		if err != nil {
			return fmt.Errorf("partial exception: %w", err)
		}
		to, err := utils.ParseHHMM(exc.To)
		if err != nil {
			return fmt.Errorf("partial exception: %w", err)
		}
		if from >= to {
			return fmt.Errorf("partial exception: from %s must be before to %s", exc.From, exc.To)
		}
		return nil
	default:
		return fmt.Errorf("unknown exception scope %q", exc.Scope)
	}
}

// SetWorkTimeRules replaces the full weekly rule set (PUT semantics).
func (s *DefaultDoctorService) SetWorkTimeRules(ctx context.Context, doctorID string, rules []models.WorkTimeRule) error {
	if err := validateRules(rules); err != nil {
		return err
	}
	if err := s.Repo.SetWorkTimeRules(ctx, doctorID, rules); err != nil {
		return err
	}
	s.afterMutation(doctorID, "work times updated")
	return nil
}

func (s *DefaultDoctorService) SetSlotDuration(ctx context.Context, doctorID string, minutes int) error {
	if err := validateDuration(minutes); err != nil {
		return err
	}
	if err := s.Repo.SetSlotDuration(ctx, doctorID, minutes); err != nil {
		return err
	}
	s.afterMutation(doctorID, "slot duration updated")
	return nil
}

func (s *DefaultDoctorService) AddExceptionDay(ctx context.Context, doctorID string, exc models.ExceptionDay) error {
	if err := validateException(exc); err != nil {
		return err
	}
	if err := s.Repo.AddExceptionDay(ctx, doctorID, exc); err != nil {
		return err
	}
	s.afterMutation(doctorID, "exception day added")
	return nil
}

func (s *DefaultDoctorService) RemoveExceptionDay(ctx context.Context, doctorID, date string) error {
	if err := s.Repo.RemoveExceptionDay(ctx, doctorID, date); err != nil {
		return err
	}
	s.afterMutation(doctorID, "exception day removed")
	return nil
}

// afterMutation invalidates cached slots and notifies the doctor. Both are
// best-effort: the configuration change has already been persisted.
func (s *DefaultDoctorService) afterMutation(doctorID, change string) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.SlotCache != nil {
		if err := s.SlotCache.InvalidateDoctor(ctx, doctorID); err != nil {
			logger.Warn("slot cache invalidation failed",
				zap.String("doctorID", doctorID), zap.Error(err))
		}
	}
	if s.Notification != nil {
		if err := s.Notification.SendDoctorPushNotification(ctx, doctorID,
			"Schedule updated", change, map[string]string{"change": change}); err != nil {
			logger.Warn("schedule update notification failed",
				zap.String("doctorID", doctorID), zap.Error(err))
		}
	}
}
