package schedule

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	branchRepo "easyappointment/database/repository/branch"
	providerRepo "easyappointment/database/repository/provider"
	slotRepo "easyappointment/database/repository/slot"
	"easyappointment/models"
)

// ScheduleService expands provider availability into persisted slots and
// serves the provider-facing schedule view.
type ScheduleService interface {
	// GenerateSchedule expands the provider's weekly availability over the
	// scheduling horizon and persists the slot set, replacing any slots the
	// provider already has from today onward. It returns the number of
	// slots written. Replacement makes worker retries safe; the operation
	// is only ever triggered on provider creation, when no claims exist yet.
	GenerateSchedule(ctx context.Context, providerID string) (int, error)

	// ListSlotsForProvider returns the provider's slots starting in [from, to).
	ListSlotsForProvider(ctx context.Context, providerID string, from, to time.Time) ([]models.Slot, error)
}

// DefaultScheduleService is the concrete implementation backed by mongo
// repositories and an optional redis cache for slot listings.
type DefaultScheduleService struct {
	Providers     providerRepo.ProviderRepository
	Branches      branchRepo.BranchRepository
	Slots         slotRepo.SlotRepository
	Cache         *redis.Client
	HorizonMonths int

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultScheduleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *DefaultScheduleService) horizonMonths() int {
	if s.HorizonMonths > 0 {
		return s.HorizonMonths
	}
	return 3
}
