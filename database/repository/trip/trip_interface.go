package tripRepo

import (
	"roamly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TripFilter narrows trip listings.
type TripFilter struct {
	Visibility string
	Status     string
}

// TripRepository defines data access for the trips collection.
type TripRepository interface {
	Create(trip *models.Trip) error
	UpdateFields(id string, fields bson.M) error
	Delete(id string) error

	GetByID(id string) (*models.Trip, error)
	ListForUser(userID string, filter TripFilter) ([]models.Trip, error)
	Search(userID, query string) ([]models.Trip, error)
	Nearby(lng, lat, maxMeters float64) ([]models.Trip, error)

	// AddCollaborator pushes a collaborator entry guarded against
	// duplicates. It reports whether the trip was modified.
	AddCollaborator(tripID string, collab models.Collaborator) (bool, error)
	IncrementStat(tripID, field string, delta float64) error
}
