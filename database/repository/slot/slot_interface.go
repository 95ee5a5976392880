package slotRepo

import (
	"context"
	"time"

	"easyappointment/models"
)

// SlotRepository defines data access for slots, including the transactional
// claim and release paths shared with booking documents. Lookups return
// (nil, nil) when no document matches.
type SlotRepository interface {
	BulkInsert(slots []models.Slot) error
	GetByID(id string) (*models.Slot, error)
	GetByIDs(ids []string) ([]models.Slot, error)
	FindByProviderAndRange(providerID string, from, to time.Time) ([]models.Slot, error)
	DeleteByProvider(providerID string) error
	DeleteByProviderFrom(providerID string, from time.Time) error

	// ClaimForBooking inserts the booking and flips every slot to claimed in
	// one transaction. A slot that is no longer unclaimed at the observed
	// version aborts the whole transaction with ErrWriteConflict.
	ClaimForBooking(ctx context.Context, booking *models.Booking, slots []models.Slot) error

	// ReleaseBooking moves the booking from Confirmed to status and clears
	// the booking link on its slots in one transaction. A booking no longer
	// in Confirmed state aborts with ErrWriteConflict.
	ReleaseBooking(ctx context.Context, bookingID, status string, slotIDs []string) error
}
