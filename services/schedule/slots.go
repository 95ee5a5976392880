package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"easyappointment/models"
	"easyappointment/utils"
)

const slotListingTTL = 30 * time.Second

// ListSlotsForProvider returns the provider's slots starting in [from, to),
// ordered by start time. Listings are cached briefly since the slot set
// only moves on claims, releases and generation.
func (s *DefaultScheduleService) ListSlotsForProvider(ctx context.Context, providerID string, from, to time.Time) ([]models.Slot, error) {
	if !to.After(from) {
		return nil, utils.Validationf("range end %s must be after range start %s", to, from)
	}
	if to.Before(s.now()) {
		return nil, utils.Validationf("schedule range [%s, %s) lies entirely in the past", from, to)
	}

	prov, err := s.Providers.GetByID(providerID)
	if err != nil {
		return nil, err
	}
	if prov == nil {
		return nil, utils.NotFoundf("provider %s not found", providerID)
	}

	cacheKey := fmt.Sprintf("provider-slots:%s:%d:%d", providerID, from.Unix(), to.Unix())
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached []models.Slot
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return cached, nil
			}
		}
	}

	slots, err := s.Slots.FindByProviderAndRange(providerID, from, to)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(slots); err == nil {
			s.Cache.Set(ctx, cacheKey, data, slotListingTTL)
		}
	}
	return slots, nil
}
