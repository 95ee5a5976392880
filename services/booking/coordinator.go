package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	slotRepo "easyappointment/database/repository/slot"
	"easyappointment/models"
	"easyappointment/utils"
)

// CreateBooking validates the requested slot set and claims it in one
// transaction. Preconditions are checked against a snapshot read first so
// callers get precise errors; the transactional claim re-checks each slot
// at its observed version, turning any interleaved claim into a
// concurrency conflict with no partial writes.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, slotIDs []string, providerID string) (*models.Booking, error) {
	logger := utils.GetLogger()

	if len(slotIDs) == 0 {
		return nil, utils.Validationf("booking must reference at least one slot")
	}
	if userID == "" {
		return nil, utils.Validationf("userId is required")
	}
	// Duplicates would collapse in the id lookup and misread as missing slots.
	seen := make(map[string]struct{}, len(slotIDs))
	for _, id := range slotIDs {
		if _, dup := seen[id]; dup {
			return nil, utils.Validationf("slot %s is requested more than once", id)
		}
		seen[id] = struct{}{}
	}

	slots, err := s.Slots.GetByIDs(slotIDs)
	if err != nil {
		return nil, err
	}
	if len(slots) != len(slotIDs) {
		return nil, utils.NotFoundf("one or more slots do not exist")
	}
	for i := range slots {
		if slots[i].ProviderID != providerID {
			return nil, utils.Validationf("slot %s does not belong to provider %s", slots[i].ID, providerID)
		}
		if !slots[i].Available() {
			return nil, utils.Conflictf("slot %s is no longer available", slots[i].ID)
		}
	}

	booking := &models.Booking{
		ID:         uuid.New().String(),
		UserID:     userID,
		ProviderID: providerID,
		SlotIDs:    slotIDs,
		Status:     models.BookingStatusConfirmed,
		CreatedAt:  s.now(),
	}

	if err := s.Slots.ClaimForBooking(ctx, booking, slots); err != nil {
		if errors.Is(err, slotRepo.ErrWriteConflict) {
			return nil, utils.Concurrencyf("a concurrent booking claimed one of the requested slots")
		}
		return nil, err
	}

	logger.Info("Booking created",
		zap.String("bookingId", booking.ID),
		zap.String("userId", userID),
		zap.Int("slots", len(slotIDs)))
	return booking, nil
}

// CancelBooking resolves the slot, then its owning booking, and releases
// the whole booking. Only Confirmed bookings are cancellable; a repeat
// cancel is a conflict and leaves state untouched.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, slotID string) (*models.Booking, error) {
	logger := utils.GetLogger()

	slot, err := s.Slots.GetByID(slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, utils.NotFoundf("slot %s not found", slotID)
	}
	if slot.BookingID == "" {
		return nil, utils.NotFoundf("slot %s has no active booking", slotID)
	}

	booking, err := s.Bookings.GetByID(slot.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, utils.NotFoundf("booking %s not found", slot.BookingID)
	}
	if !booking.Cancellable() {
		return nil, utils.Conflictf("booking %s is already cancelled or not in a cancellable state", booking.ID)
	}

	if err := s.Slots.ReleaseBooking(ctx, booking.ID, models.BookingStatusCancelled, booking.SlotIDs); err != nil {
		if errors.Is(err, slotRepo.ErrWriteConflict) {
			return nil, utils.Conflictf("booking %s is already cancelled or not in a cancellable state", booking.ID)
		}
		return nil, err
	}
	booking.Status = models.BookingStatusCancelled

	logger.Info("Booking cancelled",
		zap.String("bookingId", booking.ID),
		zap.Int("slots", len(booking.SlotIDs)))
	return booking, nil
}

// activeStatuses are the booking states whose slots appear in a user's
// booked-slot listing.
func activeStatus(status string) bool {
	return status == models.BookingStatusConfirmed || status == models.BookingStatusPartiallyCancelled
}

// overlapsRange reports whether the slot starts within [from, to).
func startsInRange(s *models.Slot, from, to time.Time) bool {
	return !s.StartTime.Before(from) && s.StartTime.Before(to)
}
