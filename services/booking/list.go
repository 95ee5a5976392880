package booking

import (
	"context"
	"sort"
	"time"

	"easyappointment/models"
	"easyappointment/utils"
)

// ListUserBookings gathers the slots of the user's Confirmed and
// PartiallyCancelled bookings, intersects them with [from, to) and orders
// them by start time.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string, from, to time.Time, includePast bool) ([]models.Slot, error) {
	if userID == "" {
		return nil, utils.Validationf("userId is required")
	}
	if !to.After(from) {
		return nil, utils.Validationf("range end %s must be after range start %s", to, from)
	}

	bookings, err := s.Bookings.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	var slotIDs []string
	for i := range bookings {
		if activeStatus(bookings[i].Status) {
			slotIDs = append(slotIDs, bookings[i].SlotIDs...)
		}
	}
	if len(slotIDs) == 0 {
		return []models.Slot{}, nil
	}

	slots, err := s.Slots.GetByIDs(slotIDs)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]models.Slot, 0, len(slots))
	for i := range slots {
		if !startsInRange(&slots[i], from, to) {
			continue
		}
		if !includePast && slots[i].EndTime.Before(now) {
			continue
		}
		out = append(out, slots[i])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}
