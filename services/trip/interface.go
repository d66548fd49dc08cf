package trip

import (
	bookingRepo "roamly/database/repository/booking"
	invitationRepo "roamly/database/repository/invitation"
	templateRepo "roamly/database/repository/template"
	tripRepo "roamly/database/repository/trip"
	userRepo "roamly/database/repository/user"
	"roamly/models"
	"time"
)

// CreateTripRequest carries the fields accepted when creating a trip.
type CreateTripRequest struct {
	Title       string    `json:"title" binding:"required"`
	Destination string    `json:"destination" binding:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	Visibility  string    `json:"visibility"`
	Status      string    `json:"status"`
	Tags        []string  `json:"tags"`
	Longitude   *float64  `json:"longitude"`
	Latitude    *float64  `json:"latitude"`
}

// UpdateTripRequest carries the mutable trip fields. Visibility changes are
// owner-only.
type UpdateTripRequest struct {
	Title       *string    `json:"title"`
	Destination *string    `json:"destination"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Visibility  *string    `json:"visibility"`
	Status      *string    `json:"status"`
	Tags        *[]string  `json:"tags"`
}

// TripService defines trip lifecycle operations.
type TripService interface {
	CreateTrip(ownerID string, req CreateTripRequest) (*models.Trip, error)
	GetTrip(id, userID string) (*models.Trip, error)
	ListTrips(userID string, filter tripRepo.TripFilter) ([]models.Trip, error)
	UpdateTrip(id, userID string, req UpdateTripRequest) (*models.Trip, error)
	DeleteTrip(id, userID string) error
	SearchTrips(userID, query string) ([]models.Trip, error)
	NearbyTrips(lng, lat, maxMeters float64) ([]models.Trip, error)

	ListTemplates() ([]models.TripTemplate, error)
	CreateFromTemplate(ownerID, templateID string, startDate time.Time) (*models.Trip, error)
}

// DefaultTripService is the production implementation backed by MongoDB.
// It owns the cascade delete, so it holds the booking and invitation
// repositories alongside its own.
type DefaultTripService struct {
	Repo           tripRepo.TripRepository
	BookingRepo    bookingRepo.BookingRepository
	InvitationRepo invitationRepo.InvitationRepository
	TemplateRepo   templateRepo.TemplateRepository
	UserRepo       userRepo.UserRepository
}
