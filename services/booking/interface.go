package booking

import (
	"context"
	"time"

	bookingRepo "easyappointment/database/repository/booking"
	slotRepo "easyappointment/database/repository/slot"
	"easyappointment/models"
)

// BookingService coordinates claiming slots into bookings and reversing
// the claim on cancellation. Caller identity is always an explicit userID
// parameter; there is no ambient current-user lookup. The service performs
// no automatic retries: a lost write race surfaces as a concurrency
// conflict and retry policy belongs to the caller.
type BookingService interface {
	// CreateBooking atomically claims every requested slot into a new
	// Confirmed booking. Either all slots are claimed or none are.
	CreateBooking(ctx context.Context, userID string, slotIDs []string, providerID string) (*models.Booking, error)

	// CancelBooking cancels the entire booking owning the given slot and
	// returns every member slot to availability.
	CancelBooking(ctx context.Context, slotID string) (*models.Booking, error)

	// ListUserBookings returns the slots of the user's active bookings
	// starting in [from, to), ordered by start time. When includePast is
	// false, slots that already ended are dropped.
	ListUserBookings(ctx context.Context, userID string, from, to time.Time, includePast bool) ([]models.Slot, error)
}

// DefaultBookingService is the concrete implementation backed by mongo
// repositories.
type DefaultBookingService struct {
	Slots    slotRepo.SlotRepository
	Bookings bookingRepo.BookingRepository

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
