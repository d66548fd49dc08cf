package handlers

import (
	"errors"
	"net/http"
	"strconv"

	addressSvc "roamly/services/address"
	tripSvc "roamly/services/trip"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AddressService is assigned during startup wiring.
var AddressService addressSvc.AddressService

// respondAddressError maps address service errors onto HTTP statuses.
func respondAddressError(c *gin.Context, err error) {
	var ve addressSvc.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Msg})
	case errors.Is(err, addressSvc.ErrAddressNotFound), errors.Is(err, tripSvc.ErrTripNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, addressSvc.ErrNotAuthorized), errors.Is(err, tripSvc.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		getLogger(c).Error("address operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

// CreateAddressHandler saves an address in the user's address book.
func CreateAddressHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req addressSvc.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	a, err := AddressService.CreateAddress(userID, req)
	if err != nil {
		respondAddressError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// ListAddressesHandler returns the user's address book.
func ListAddressesHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	addresses, err := AddressService.ListByUser(userID)
	if err != nil {
		respondAddressError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

// ListAddressesByTripHandler returns addresses attached to a trip. View
// access on the trip gates the listing.
func ListAddressesByTripHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tripID := c.Param("tripId")
	if _, err := TripService.GetTrip(tripID, userID); err != nil {
		respondTripError(c, err)
		return
	}

	addresses, err := AddressService.ListByTrip(tripID, userID)
	if err != nil {
		respondAddressError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

// UpdateAddressHandler applies a partial address update.
func UpdateAddressHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req addressSvc.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	a, err := AddressService.UpdateAddress(c.Param("id"), userID, req)
	if err != nil {
		respondAddressError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteAddressHandler removes an address. Trip deletion never cascades here;
// this is the only way an address goes away.
func DeleteAddressHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := AddressService.DeleteAddress(c.Param("id"), userID); err != nil {
		respondAddressError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}

// NearbyAddressesHandler finds the user's addresses near a point.
func NearbyAddressesHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
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

	addresses, err := AddressService.Nearby(userID, lng, lat, maxMeters)
	if err != nil {
		respondAddressError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}
