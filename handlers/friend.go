package handlers

import (
	"errors"
	"net/http"

	friendSvc "roamly/services/friend"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FriendService is assigned during startup wiring.
var FriendService friendSvc.FriendService

// respondFriendError maps friend service errors onto HTTP statuses.
func respondFriendError(c *gin.Context, err error) {
	var ve friendSvc.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Msg})
	case errors.Is(err, friendSvc.ErrRequestNotFound), errors.Is(err, friendSvc.ErrUnknownRecipient):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, friendSvc.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, friendSvc.ErrAlreadyPending), errors.Is(err, friendSvc.ErrAlreadyFriends),
		errors.Is(err, friendSvc.ErrNotActionable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		getLogger(c).Error("friend operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

// SendFriendRequestHandler creates a pending friend request. The contact is
// an email address or a phone number, classified automatically.
func SendFriendRequestHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Contact string `json:"contact" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	fr, err := FriendService.SendRequest(userID, req.Contact)
	if err != nil {
		respondFriendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fr)
}

// ListFriendRequestsHandler returns incoming and outgoing requests.
func ListFriendRequestsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	lists, err := FriendService.ListRequests(userID)
	if err != nil {
		respondFriendError(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

// RespondFriendRequestHandler accepts or declines an incoming request.
func RespondFriendRequestHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Action != "accept" && req.Action != "decline" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be accept or decline"})
		return
	}

	fr, err := FriendService.Respond(c.Param("id"), userID, req.Action == "accept")
	if err != nil {
		respondFriendError(c, err)
		return
	}
	c.JSON(http.StatusOK, fr)
}

// ListFriendsHandler returns the user's friends.
func ListFriendsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	friends, err := FriendService.ListFriends(userID)
	if err != nil {
		respondFriendError(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

// RemoveFriendHandler drops a friendship in both directions.
func RemoveFriendHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := FriendService.RemoveFriend(userID, c.Param("userId")); err != nil {
		respondFriendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Friend removed"})
}
