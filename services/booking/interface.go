package booking

import (
	"time"

	bookingRepo "roamly/database/repository/booking"
	tripRepo "roamly/database/repository/trip"
	"roamly/models"
)

// CreateBookingRequest carries the fields accepted when creating a booking.
// Optional fields are pointers so absent values stay absent in storage.
type CreateBookingRequest struct {
	TripID      string     `json:"tripId" binding:"required"`
	Type        string     `json:"type" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Date        time.Time  `json:"date" binding:"required"`
	EndDate     *time.Time `json:"endDate"`
	Price       *float64   `json:"price"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status"`
	Attachments []string   `json:"attachments"`
	Notes       string     `json:"notes"`
}

// UpdateBookingRequest carries the mutable booking fields.
type UpdateBookingRequest struct {
	Type        *string    `json:"type"`
	Title       *string    `json:"title"`
	Date        *time.Time `json:"date"`
	EndDate     *time.Time `json:"endDate"`
	Price       *float64   `json:"price"`
	Currency    *string    `json:"currency"`
	Status      *string    `json:"status"`
	Attachments *[]string  `json:"attachments"`
	Notes       *string    `json:"notes"`
}

// BookingService defines booking operations.
type BookingService interface {
	CreateBooking(userID string, req CreateBookingRequest) (*models.Booking, error)
	ListByTrip(tripID, userID string) ([]models.Booking, error)
	UpdateBooking(id, userID string, req UpdateBookingRequest) (*models.Booking, error)
	DeleteBooking(id, userID string) error
}

// DefaultBookingService is the production implementation. It holds the trip
// repository for capability checks and stats maintenance.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	TripRepo tripRepo.TripRepository
}
