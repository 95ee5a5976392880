package bookingRepo

import "easyappointment/models"

// BookingRepository defines read access for booking documents. Writes go
// through the slot repository's transactional claim and release paths.
// Lookups return (nil, nil) when no document matches.
type BookingRepository interface {
	GetByID(id string) (*models.Booking, error)
	FindByUser(userID string) ([]models.Booking, error)
}
