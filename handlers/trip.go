package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	tripRepo "roamly/database/repository/trip"
	tripSvc "roamly/services/trip"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TripService is assigned during startup wiring.
var TripService tripSvc.TripService

// respondTripError maps trip service errors onto HTTP statuses.
func respondTripError(c *gin.Context, err error) {
	var ve tripSvc.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Msg})
	case errors.Is(err, tripSvc.ErrTripNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, tripSvc.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		getLogger(c).Error("trip operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

// CreateTripHandler creates a trip owned by the authenticated user.
func CreateTripHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req tripSvc.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	t, err := TripService.CreateTrip(userID, req)
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// GetTripHandler returns a single trip the user may view.
func GetTripHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	t, err := TripService.GetTrip(c.Param("id"), userID)
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// ListTripsHandler returns trips the user owns or collaborates on.
func ListTripsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	filter := tripRepo.TripFilter{
		Visibility: c.Query("visibility"),
		Status:     c.Query("status"),
	}
	trips, err := TripService.ListTrips(userID, filter)
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// UpdateTripHandler applies a partial trip update.
func UpdateTripHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req tripSvc.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	t, err := TripService.UpdateTrip(c.Param("id"), userID, req)
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTripHandler removes a trip and cascades to its bookings and
// invitations. Owner only.
func DeleteTripHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := TripService.DeleteTrip(c.Param("id"), userID); err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted"})
}

// SearchTripsHandler runs a text search over trips visible to the user.
func SearchTripsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	trips, err := TripService.SearchTrips(userID, q)
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// NearbyTripsHandler returns public trips near a point.
func NearbyTripsHandler(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	if errLng != nil || errLat != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lng and lat query parameters are required"})
		return
	}
	maxMeters, _ := strconv.ParseFloat(c.DefaultQuery("radius", "0"), 64)

	trips, err := TripService.NearbyTrips(lng, lat, maxMeters)
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// ListTemplatesHandler returns the trip template catalog.
func ListTemplatesHandler(c *gin.Context) {
	templates, err := TripService.ListTemplates()
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// TripFromTemplateHandler instantiates a draft trip from a template.
func TripFromTemplateHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		StartDate time.Time `json:"startDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	t, err := TripService.CreateFromTemplate(userID, c.Param("templateId"), req.StartDate)
	if err != nil {
		respondTripError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}
