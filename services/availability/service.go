package availability

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/utils"
)

// Service resolves availability for stored doctors, caching the computed
// display slots per (doctor, date). The cache is a read-side accelerator
// only; booking validation always recomputes from the live configuration.
type Service struct {
	DoctorRepo doctorRepo.DoctorRepository
	Cache      *redis.Client
}

func slotCacheKey(doctorID, date string) string {
	return fmt.Sprintf("%s%s:%s", utils.SlotCachePrefix, doctorID, date)
}

// DisplaySlotsForDoctor returns the deduped, sorted advisory slot list for a
// doctor on the given date, served from Redis when possible.
func (s *Service) DisplaySlotsForDoctor(ctx context.Context, doctorID, date string) ([]string, error) {
	logger := utils.GetLogger()
	key := slotCacheKey(doctorID, date)

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var slots []string
			if err := json.Unmarshal([]byte(cached), &slots); err == nil {
				return slots, nil
			}
			logger.Warn("corrupt slot cache entry, recomputing", zap.String("key", key))
		}
	}

	doc, err := s.DoctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load doctor %s: %w", doctorID, err)
	}

	slots := DisplaySlots(doc.Availability, date)

	if s.Cache != nil {
		data, err := json.Marshal(slots)
		if err == nil {
			if err := s.Cache.Set(ctx, key, data, utils.SlotCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache slots", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return slots, nil
}

// InvalidateDoctor drops every cached slot computation for the doctor. Called
// by the configuration manager after any availability mutation.
func (s *Service) InvalidateDoctor(ctx context.Context, doctorID string) error {
	if s.Cache == nil {
		return nil
	}
	pattern := fmt.Sprintf("%s%s:*", utils.SlotCachePrefix, doctorID)
	iter := s.Cache.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := s.Cache.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to invalidate slot cache for doctor %s: %w", doctorID, err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("slot cache scan failed for doctor %s: %w", doctorID, err)
	}
	return nil
}
