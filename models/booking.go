package models

import "time"

// Booking statuses. Transitions are monotonic: Confirmed may move to
// Cancelled or PartiallyCancelled; both of those are terminal.
// PartiallyCancelled is modeled but no current operation produces it.
const (
	BookingStatusConfirmed          = "Confirmed"
	BookingStatusCancelled          = "Cancelled"
	BookingStatusPartiallyCancelled = "PartiallyCancelled"
)

// Booking is a claim grouping one or more slots under one user.
// Bookings are never deleted; status records history.
type Booking struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"userId" json:"userId"`
	ProviderID string    `bson:"providerId,omitempty" json:"providerId,omitempty"`
	SlotIDs    []string  `bson:"slotIds" json:"slotIds"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// Cancellable reports whether the booking can still be cancelled.
func (b *Booking) Cancellable() bool {
	return b.Status == BookingStatusConfirmed
}
