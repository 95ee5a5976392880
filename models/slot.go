package models

import "time"

// Slot is a single bookable interval owned by one provider.
//
// BookingID is the single source of truth for availability: a slot is
// available exactly when BookingID is empty. Version is bumped on every
// claim or release so concurrent writers can detect a lost race.
type Slot struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	StartTime  time.Time `bson:"startTime" json:"startTime"`
	EndTime    time.Time `bson:"endTime" json:"endTime"`
	Duration   int       `bson:"duration" json:"duration"` // minutes, equals EndTime - StartTime
	BookingID  string    `bson:"bookingId" json:"bookingId,omitempty"`
	Version    int       `bson:"version" json:"-"`
}

// Available reports whether the slot is currently unclaimed.
func (s *Slot) Available() bool {
	return s.BookingID == ""
}

// SlotResponse is the wire view of a slot with availability spelled out.
type SlotResponse struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"providerId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Duration   int       `json:"duration"`
	Available  bool      `json:"available"`
}

// NewSlotResponse maps a slot document to its wire view.
func NewSlotResponse(s Slot) SlotResponse {
	return SlotResponse{
		ID:         s.ID,
		ProviderID: s.ProviderID,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		Duration:   s.Duration,
		Available:  s.Available(),
	}
}

// SlotResponses maps a slice of slots, preserving order.
func SlotResponses(slots []Slot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, NewSlotResponse(s))
	}
	return out
}
