package handlers

import (
	"errors"
	"net/http"

	bookingSvc "roamly/services/booking"
	tripSvc "roamly/services/trip"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingService is assigned during startup wiring.
var BookingService bookingSvc.BookingService

// respondBookingError maps booking service errors onto HTTP statuses. Trip
// lookups inside the booking service surface trip sentinel errors.
func respondBookingError(c *gin.Context, err error) {
	var ve bookingSvc.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Msg})
	case errors.Is(err, bookingSvc.ErrBookingNotFound), errors.Is(err, tripSvc.ErrTripNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, bookingSvc.ErrNotAuthorized), errors.Is(err, tripSvc.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		getLogger(c).Error("booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

// CreateBookingHandler adds a booking to a trip.
func CreateBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req bookingSvc.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := BookingService.CreateBooking(userID, req)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListBookingsByTripHandler returns a trip's bookings ordered by date.
func ListBookingsByTripHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookings, err := BookingService.ListByTrip(c.Param("tripId"), userID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingHandler applies a partial booking update.
func UpdateBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req bookingSvc.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := BookingService.UpdateBooking(c.Param("id"), userID, req)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBookingHandler removes a booking.
func DeleteBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := BookingService.DeleteBooking(c.Param("id"), userID); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}
