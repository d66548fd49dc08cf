package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tripRepo "roamly/database/repository/trip"
	"roamly/models"
	tripSvc "roamly/services/trip"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTripService returns canned results so the handler's binding and error
// mapping can be exercised without a database.
type stubTripService struct {
	createErr error
	deleteErr error
	getErr    error
	trip      *models.Trip
}

func (s *stubTripService) CreateTrip(ownerID string, req tripSvc.CreateTripRequest) (*models.Trip, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	t := &models.Trip{
		ID:            "trip-1",
		Title:         req.Title,
		Destination:   req.Destination,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		OwnerID:       ownerID,
		Collaborators: []models.Collaborator{},
		Visibility:    models.TripVisibilityPrivate,
		Status:        models.TripStatusValidated,
	}
	return t, nil
}
func (s *stubTripService) GetTrip(id, userID string) (*models.Trip, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.trip, nil
}
func (s *stubTripService) ListTrips(userID string, filter tripRepo.TripFilter) ([]models.Trip, error) {
	return nil, nil
}
func (s *stubTripService) UpdateTrip(id, userID string, req tripSvc.UpdateTripRequest) (*models.Trip, error) {
	return nil, nil
}
func (s *stubTripService) DeleteTrip(id, userID string) error { return s.deleteErr }
func (s *stubTripService) SearchTrips(userID, query string) ([]models.Trip, error) {
	return nil, nil
}
func (s *stubTripService) NearbyTrips(lng, lat, maxMeters float64) ([]models.Trip, error) {
	return nil, nil
}
func (s *stubTripService) ListTemplates() ([]models.TripTemplate, error) { return nil, nil }
func (s *stubTripService) CreateFromTemplate(ownerID, templateID string, startDate time.Time) (*models.Trip, error) {
	return nil, nil
}

// asUser injects an authenticated user id, standing in for the JWT middleware.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func newTripRouter(svc tripSvc.TripService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	TripService = svc
	r := gin.New()
	r.POST("/api/trips", asUser("owner-1"), CreateTripHandler)
	r.GET("/api/trips/:id", asUser("owner-1"), GetTripHandler)
	r.DELETE("/api/trips/:id", asUser("owner-1"), DeleteTripHandler)
	return r
}

func TestCreateTripHandlerReturns201WithDefaults(t *testing.T) {
	r := newTripRouter(&stubTripService{})

	body := `{
		"title": "Paris Adventure",
		"destination": "Paris",
		"startDate": "2026-09-01T00:00:00Z",
		"endDate": "2026-09-08T00:00:00Z"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Paris Adventure", resp["title"])
	assert.Equal(t, "validated", resp["status"])
	assert.Equal(t, []any{}, resp["collaborators"])
	stats := resp["stats"].(map[string]any)
	assert.Equal(t, 0.0, stats["totalBookings"])
}

func TestCreateTripHandlerMapsValidationTo400(t *testing.T) {
	r := newTripRouter(&stubTripService{
		createErr: tripSvc.ValidationError{Msg: "end date must be after start date"},
	})

	body := `{
		"title": "Paris Adventure",
		"destination": "Paris",
		"startDate": "2026-09-08T00:00:00Z",
		"endDate": "2026-09-01T00:00:00Z"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "end date must be after start date")
}

func TestCreateTripHandlerRejectsMalformedBody(t *testing.T) {
	r := newTripRouter(&stubTripService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(`{"title":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTripHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found maps to 404", tripSvc.ErrTripNotFound, http.StatusNotFound},
		{"not authorized maps to 403", tripSvc.ErrNotAuthorized, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTripRouter(&stubTripService{deleteErr: tc.err, getErr: tc.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/trips/trip-1", nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)

			w = httptest.NewRecorder()
			req = httptest.NewRequest(http.MethodGet, "/api/trips/trip-1", nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
