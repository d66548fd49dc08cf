package trip

import (
	"fmt"

	tripRepo "roamly/database/repository/trip"
	"roamly/models"
	"roamly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func validVisibility(v string) bool {
	switch v {
	case models.TripVisibilityPrivate, models.TripVisibilityFriends, models.TripVisibilityPublic:
		return true
	}
	return false
}

func validStatus(s string) bool {
	return s == models.TripStatusDraft || s == models.TripStatusValidated
}

// CreateTrip validates the request and persists a new trip owned by ownerID.
func (s *DefaultTripService) CreateTrip(ownerID string, req CreateTripRequest) (*models.Trip, error) {
	if req.Title == "" || req.Destination == "" {
		return nil, ValidationError{Msg: "title and destination are required"}
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, ValidationError{Msg: "end date must be after start date"}
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = models.TripVisibilityPrivate
	}
	if !validVisibility(visibility) {
		return nil, ValidationError{Msg: "invalid visibility"}
	}

	status := req.Status
	if status == "" {
		status = models.TripStatusValidated
	}
	if !validStatus(status) {
		return nil, ValidationError{Msg: "invalid status"}
	}

	t := models.Trip{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Destination:   req.Destination,
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		OwnerID:       ownerID,
		Collaborators: []models.Collaborator{},
		Visibility:    visibility,
		Status:        status,
		Tags:          req.Tags,
	}
	if req.Longitude != nil && req.Latitude != nil {
		t.Location = models.NewGeoPoint(*req.Longitude, *req.Latitude)
	}

	if err := s.Repo.Create(&t); err != nil {
		utils.GetLogger().Error("CreateTrip: persist failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create trip")
	}

	if err := s.UserRepo.IncrementStat(ownerID, "tripsCreated", 1); err != nil {
		utils.GetLogger().Warn("CreateTrip: stats update failed", zap.String("ownerId", ownerID), zap.Error(err))
	}

	return &t, nil
}

// GetTrip retrieves a trip the user is allowed to view.
func (s *DefaultTripService) GetTrip(id, userID string) (*models.Trip, error) {
	t, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTripNotFound
	}
	if !CanView(t, userID) {
		return nil, ErrNotAuthorized
	}
	return t, nil
}

// ListTrips retrieves the trips the user owns or collaborates on.
func (s *DefaultTripService) ListTrips(userID string, filter tripRepo.TripFilter) ([]models.Trip, error) {
	return s.Repo.ListForUser(userID, filter)
}

// UpdateTrip applies the provided fields. Editing requires the CanEdit
// capability; changing visibility is owner-only.
func (s *DefaultTripService) UpdateTrip(id, userID string, req UpdateTripRequest) (*models.Trip, error) {
	t, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTripNotFound
	}
	if !CanEdit(t, userID) {
		return nil, ErrNotAuthorized
	}

	fields := bson.M{}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, ValidationError{Msg: "title cannot be empty"}
		}
		fields["title"] = *req.Title
	}
	if req.Destination != nil {
		fields["destination"] = *req.Destination
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	start, end := t.StartDate, t.EndDate
	if req.StartDate != nil {
		start = *req.StartDate
		fields["startDate"] = start
	}
	if req.EndDate != nil {
		end = *req.EndDate
		fields["endDate"] = end
	}
	if !end.After(start) {
		return nil, ValidationError{Msg: "end date must be after start date"}
	}

	if req.Visibility != nil {
		if !IsOwner(t, userID) {
			return nil, ErrNotAuthorized
		}
		if !validVisibility(*req.Visibility) {
			return nil, ValidationError{Msg: "invalid visibility"}
		}
		fields["visibility"] = *req.Visibility
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return nil, ValidationError{Msg: "invalid status"}
		}
		fields["status"] = *req.Status
	}
	if req.Tags != nil {
		fields["tags"] = *req.Tags
	}
	if len(fields) == 0 {
		return nil, ValidationError{Msg: "no fields to update"}
	}

	if err := s.Repo.UpdateFields(id, fields); err != nil {
		utils.GetLogger().Error("UpdateTrip: update failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update trip")
	}
	return s.Repo.GetByID(id)
}

// DeleteTrip removes the trip and cascades to its bookings and invitations.
// Addresses are decoupled from trips and survive. Owner-only.
func (s *DefaultTripService) DeleteTrip(id, userID string) error {
	t, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTripNotFound
	}
	if !IsOwner(t, userID) {
		return ErrNotAuthorized
	}

	if err := s.Repo.Delete(id); err != nil {
		return err
	}

	logger := utils.GetLogger()
	if n, err := s.BookingRepo.DeleteByTrip(id); err != nil {
		logger.Error("DeleteTrip: booking cascade failed", zap.String("tripId", id), zap.Error(err))
	} else if n > 0 {
		logger.Sugar().Infof("DeleteTrip: removed %d bookings for trip %s", n, id)
	}
	if n, err := s.InvitationRepo.DeleteByTrip(id); err != nil {
		logger.Error("DeleteTrip: invitation cascade failed", zap.String("tripId", id), zap.Error(err))
	} else if n > 0 {
		logger.Sugar().Infof("DeleteTrip: removed %d invitations for trip %s", n, id)
	}

	if err := s.UserRepo.IncrementStat(userID, "tripsCreated", -1); err != nil {
		logger.Warn("DeleteTrip: stats update failed", zap.String("ownerId", userID), zap.Error(err))
	}
	return nil
}

// SearchTrips runs a text search over the user's visible trips.
func (s *DefaultTripService) SearchTrips(userID, query string) ([]models.Trip, error) {
	if query == "" {
		return nil, ValidationError{Msg: "search query is required"}
	}
	return s.Repo.Search(userID, query)
}

// NearbyTrips finds public trips near the given point.
func (s *DefaultTripService) NearbyTrips(lng, lat, maxMeters float64) ([]models.Trip, error) {
	if maxMeters <= 0 {
		maxMeters = 50000
	}
	return s.Repo.Nearby(lng, lat, maxMeters)
}
