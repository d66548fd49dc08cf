package booking

import (
	"errors"
	"fmt"

	"roamly/models"
	tripSvc "roamly/services/trip"
	"roamly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sentinel errors mapped to HTTP statuses in the handlers.
var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotAuthorized   = errors.New("not authorized for this booking")
)

// ValidationError wraps a user-correctable input problem (400).
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

func validBookingType(t string) bool {
	switch t {
	case models.BookingTypeFlight, models.BookingTypeTrain, models.BookingTypeHotel,
		models.BookingTypeRestaurant, models.BookingTypeActivity:
		return true
	}
	return false
}

func validBookingStatus(s string) bool {
	switch s {
	case models.BookingStatusConfirmed, models.BookingStatusPending, models.BookingStatusCancelled:
		return true
	}
	return false
}

// tripForBooking loads the trip and checks the booking capability.
func (s *DefaultBookingService) tripForBooking(tripID, userID string) (*models.Trip, error) {
	t, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, tripSvc.ErrTripNotFound
	}
	if !tripSvc.CanAddBookings(t, userID) {
		return nil, ErrNotAuthorized
	}
	return t, nil
}

// CreateBooking validates the request and persists a new booking, adjusting
// the trip's denormalized stats.
func (s *DefaultBookingService) CreateBooking(userID string, req CreateBookingRequest) (*models.Booking, error) {
	if !validBookingType(req.Type) {
		return nil, ValidationError{Msg: "invalid booking type"}
	}
	status := req.Status
	if status == "" {
		status = models.BookingStatusPending
	}
	if !validBookingStatus(status) {
		return nil, ValidationError{Msg: "invalid booking status"}
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, ValidationError{Msg: "price cannot be negative"}
	}
	if req.EndDate != nil && req.EndDate.Before(req.Date) {
		return nil, ValidationError{Msg: "end date cannot precede start date"}
	}

	if _, err := s.tripForBooking(req.TripID, userID); err != nil {
		return nil, err
	}

	b := models.Booking{
		ID:          uuid.NewString(),
		TripID:      req.TripID,
		Type:        req.Type,
		Title:       req.Title,
		Date:        req.Date,
		EndDate:     req.EndDate,
		Price:       req.Price,
		Currency:    req.Currency,
		Status:      status,
		Attachments: req.Attachments,
		Notes:       req.Notes,
	}
	if err := s.Repo.Create(&b); err != nil {
		utils.GetLogger().Error("CreateBooking: persist failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking")
	}

	s.adjustTripStats(req.TripID, 1, priceOrZero(req.Price))
	return &b, nil
}

// ListByTrip retrieves a trip's bookings for a user allowed to view it.
func (s *DefaultBookingService) ListByTrip(tripID, userID string) ([]models.Booking, error) {
	t, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, tripSvc.ErrTripNotFound
	}
	if !tripSvc.CanView(t, userID) {
		return nil, ErrNotAuthorized
	}
	return s.Repo.ListByTrip(tripID)
}

// UpdateBooking applies the provided fields to an existing booking.
func (s *DefaultBookingService) UpdateBooking(id, userID string, req UpdateBookingRequest) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if _, err := s.tripForBooking(b.TripID, userID); err != nil {
		return nil, err
	}

	oldPrice := priceOrZero(b.Price)

	if req.Type != nil {
		if !validBookingType(*req.Type) {
			return nil, ValidationError{Msg: "invalid booking type"}
		}
		b.Type = *req.Type
	}
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Date != nil {
		b.Date = *req.Date
	}
	if req.EndDate != nil {
		b.EndDate = req.EndDate
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ValidationError{Msg: "price cannot be negative"}
		}
		b.Price = req.Price
	}
	if req.Currency != nil {
		b.Currency = *req.Currency
	}
	if req.Status != nil {
		if !validBookingStatus(*req.Status) {
			return nil, ValidationError{Msg: "invalid booking status"}
		}
		b.Status = *req.Status
	}
	if req.Attachments != nil {
		b.Attachments = *req.Attachments
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}

	if err := s.Repo.Update(b); err != nil {
		utils.GetLogger().Error("UpdateBooking: update failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update booking")
	}

	if delta := priceOrZero(b.Price) - oldPrice; delta != 0 {
		s.adjustTripStats(b.TripID, 0, delta)
	}
	return b, nil
}

// DeleteBooking removes a booking and rolls back its stats contribution.
func (s *DefaultBookingService) DeleteBooking(id, userID string) error {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrBookingNotFound
	}
	if _, err := s.tripForBooking(b.TripID, userID); err != nil {
		return err
	}

	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.adjustTripStats(b.TripID, -1, -priceOrZero(b.Price))
	return nil
}

func (s *DefaultBookingService) adjustTripStats(tripID string, countDelta int, costDelta float64) {
	logger := utils.GetLogger()
	if countDelta != 0 {
		if err := s.TripRepo.IncrementStat(tripID, "totalBookings", float64(countDelta)); err != nil {
			logger.Warn("booking stats update failed", zap.String("tripId", tripID), zap.Error(err))
		}
	}
	if costDelta != 0 {
		if err := s.TripRepo.IncrementStat(tripID, "estimatedCost", costDelta); err != nil {
			logger.Warn("booking cost update failed", zap.String("tripId", tripID), zap.Error(err))
		}
	}
}

func priceOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
