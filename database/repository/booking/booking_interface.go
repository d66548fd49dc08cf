package bookingRepo

import "roamly/models"

// BookingRepository defines data access for the bookings collection.
type BookingRepository interface {
	Create(booking *models.Booking) error
	Update(booking *models.Booking) error
	Delete(id string) error

	GetByID(id string) (*models.Booking, error)
	ListByTrip(tripID string) ([]models.Booking, error)

	// DeleteByTrip removes every booking referencing the trip and reports
	// how many documents were removed. Used by the trip cascade delete.
	DeleteByTrip(tripID string) (int64, error)
}
