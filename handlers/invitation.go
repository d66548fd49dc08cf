package handlers

import (
	"errors"
	"net/http"
	"strings"

	invitationSvc "roamly/services/invitation"
	tripSvc "roamly/services/trip"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvitationService is assigned during startup wiring.
var InvitationService invitationSvc.InvitationService

// respondInvitationError maps invitation service errors onto HTTP statuses.
func respondInvitationError(c *gin.Context, err error) {
	var ve invitationSvc.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Msg})
	case errors.Is(err, invitationSvc.ErrInvitationNotFound), errors.Is(err, tripSvc.ErrTripNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, invitationSvc.ErrNotAuthorized), errors.Is(err, invitationSvc.ErrWrongInvitee),
		errors.Is(err, tripSvc.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, invitationSvc.ErrNotActionable), errors.Is(err, invitationSvc.ErrDuplicatePending):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		getLogger(c).Error("invitation operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

// CreateInvitationHandler issues a pending invitation for a trip.
func CreateInvitationHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req invitationSvc.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	inv, err := InvitationService.CreateInvitation(userID, req)
	if err != nil {
		respondInvitationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// RespondInvitationHandler transitions an invitation by token. The route is
// public because a decline may come from someone who never registered;
// accepting requires an authenticated responder whose email matches the
// invitation, which the service enforces.
func RespondInvitationHandler(c *gin.Context) {
	var req struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// Optional auth: present for accepts, absent for anonymous declines.
	responderID, _ := currentUserID(c)

	inv, err := InvitationService.Respond(c.Param("token"), req.Action, responderID)
	if err != nil {
		respondInvitationError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// ListInviteeInvitesHandler returns invitations addressed to an email. Users
// may only query their own email.
func ListInviteeInvitesHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	email := c.Param("email")
	usr, err := UserService.GetUserByID(userID)
	if err != nil {
		respondUserError(c, err)
		return
	}
	if !strings.EqualFold(usr.Email, email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot list invitations for another email"})
		return
	}

	invs, err := InvitationService.ListForInvitee(email, c.Query("status"))
	if err != nil {
		respondInvitationError(c, err)
		return
	}
	c.JSON(http.StatusOK, invs)
}

// ListSentInvitationsHandler returns invitations the user has sent.
func ListSentInvitationsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if c.Param("userId") != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot list invitations sent by another user"})
		return
	}

	invs, err := InvitationService.ListForInviter(userID, c.Query("status"))
	if err != nil {
		respondInvitationError(c, err)
		return
	}
	c.JSON(http.StatusOK, invs)
}
