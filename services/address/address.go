package address

import (
	"errors"
	"fmt"

	addressRepo "roamly/database/repository/address"
	"roamly/models"
	"roamly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sentinel errors mapped to HTTP statuses in the handlers.
var (
	ErrAddressNotFound = errors.New("address not found")
	ErrNotAuthorized   = errors.New("not authorized for this address")
)

// ValidationError wraps a user-correctable input problem (400).
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

// CreateAddressRequest carries the fields accepted when creating an address.
// The trip reference is optional: addresses are decoupled from trips.
type CreateAddressRequest struct {
	TripID    string   `json:"tripId"`
	Type      string   `json:"type" binding:"required"`
	Name      string   `json:"name" binding:"required"`
	Line      string   `json:"line"`
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
	Phone     string   `json:"phone"`
	Website   string   `json:"website"`
	Notes     string   `json:"notes"`
}

// UpdateAddressRequest carries the mutable address fields.
type UpdateAddressRequest struct {
	Type      *string  `json:"type"`
	Name      *string  `json:"name"`
	Line      *string  `json:"line"`
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
	Phone     *string  `json:"phone"`
	Website   *string  `json:"website"`
	Notes     *string  `json:"notes"`
}

// AddressService defines address-book operations.
type AddressService interface {
	CreateAddress(userID string, req CreateAddressRequest) (*models.Address, error)
	ListByUser(userID string) ([]models.Address, error)
	ListByTrip(tripID, userID string) ([]models.Address, error)
	UpdateAddress(id, userID string, req UpdateAddressRequest) (*models.Address, error)
	DeleteAddress(id, userID string) error
	Nearby(userID string, lng, lat, maxMeters float64) ([]models.Address, error)
}

// DefaultAddressService is the production implementation backed by MongoDB.
type DefaultAddressService struct {
	Repo addressRepo.AddressRepository
}

// CreateAddress validates the request and persists a new address.
func (s *DefaultAddressService) CreateAddress(userID string, req CreateAddressRequest) (*models.Address, error) {
	if req.Name == "" || req.Type == "" {
		return nil, ValidationError{Msg: "name and type are required"}
	}

	a := models.Address{
		ID:      uuid.NewString(),
		UserID:  userID,
		TripID:  req.TripID,
		Type:    req.Type,
		Name:    req.Name,
		Line:    req.Line,
		Phone:   req.Phone,
		Website: req.Website,
		Notes:   req.Notes,
	}
	if req.Longitude != nil && req.Latitude != nil {
		a.Location = models.NewGeoPoint(*req.Longitude, *req.Latitude)
	}

	if err := s.Repo.Create(&a); err != nil {
		utils.GetLogger().Error("CreateAddress: persist failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create address")
	}
	return &a, nil
}

// ListByUser retrieves the user's addresses.
func (s *DefaultAddressService) ListByUser(userID string) ([]models.Address, error) {
	return s.Repo.ListByUser(userID)
}

// ListByTrip retrieves addresses attached to a trip. Trip-level view access
// is checked by the handler through the trip service before calling this.
func (s *DefaultAddressService) ListByTrip(tripID, userID string) ([]models.Address, error) {
	return s.Repo.ListByTrip(tripID)
}

// ownedAddress loads the address and checks ownership.
func (s *DefaultAddressService) ownedAddress(id, userID string) (*models.Address, error) {
	a, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAddressNotFound
	}
	if a.UserID != userID {
		return nil, ErrNotAuthorized
	}
	return a, nil
}

// UpdateAddress applies the provided fields to an address the user owns.
func (s *DefaultAddressService) UpdateAddress(id, userID string, req UpdateAddressRequest) (*models.Address, error) {
	a, err := s.ownedAddress(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		a.Type = *req.Type
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, ValidationError{Msg: "name cannot be empty"}
		}
		a.Name = *req.Name
	}
	if req.Line != nil {
		a.Line = *req.Line
	}
	if req.Longitude != nil && req.Latitude != nil {
		a.Location = models.NewGeoPoint(*req.Longitude, *req.Latitude)
	}
	if req.Phone != nil {
		a.Phone = *req.Phone
	}
	if req.Website != nil {
		a.Website = *req.Website
	}
	if req.Notes != nil {
		a.Notes = *req.Notes
	}

	if err := s.Repo.Update(a); err != nil {
		utils.GetLogger().Error("UpdateAddress: update failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update address")
	}
	return a, nil
}

// DeleteAddress removes an address the user owns.
func (s *DefaultAddressService) DeleteAddress(id, userID string) error {
	if _, err := s.ownedAddress(id, userID); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

// Nearby finds the user's addresses near the given point.
func (s *DefaultAddressService) Nearby(userID string, lng, lat, maxMeters float64) ([]models.Address, error) {
	if maxMeters <= 0 {
		maxMeters = 10000
	}
	return s.Repo.Nearby(userID, lng, lat, maxMeters)
}
