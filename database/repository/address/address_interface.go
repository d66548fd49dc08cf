package addressRepo

import "roamly/models"

// AddressRepository defines data access for the addresses collection.
type AddressRepository interface {
	Create(address *models.Address) error
	Update(address *models.Address) error
	Delete(id string) error

	GetByID(id string) (*models.Address, error)
	ListByUser(userID string) ([]models.Address, error)
	ListByTrip(tripID string) ([]models.Address, error)
	Nearby(userID string, lng, lat, maxMeters float64) ([]models.Address, error)
}
