package invitation

import (
	invitationRepo "roamly/database/repository/invitation"
	tripRepo "roamly/database/repository/trip"
	userRepo "roamly/database/repository/user"
	"roamly/models"
	"roamly/services/notification"
)

// CreateInvitationRequest carries the fields accepted when inviting a
// collaborator. The permission payload becomes the collaborator entry on
// acceptance.
type CreateInvitationRequest struct {
	TripID       string                         `json:"tripId" binding:"required"`
	InviteeEmail string                         `json:"inviteeEmail" binding:"required,email"`
	Role         string                         `json:"role"`
	Permissions  models.CollaboratorPermissions `json:"permissions"`
}

// InvitationService defines the invitation lifecycle operations.
type InvitationService interface {
	// CreateInvitation issues a pending invitation with a fresh token and
	// expiry. Duplicate pending invitations for the same trip and email
	// are rejected.
	CreateInvitation(inviterID string, req CreateInvitationRequest) (*models.TripInvitation, error)

	// Respond transitions a pending invitation by token. Action is
	// "accept" or "decline". Accepting adds the responder to the trip's
	// collaborator list with the invitation's stored permissions.
	Respond(token, action, responderID string) (*models.TripInvitation, error)

	// ListForInvitee returns invitations addressed to the email,
	// optionally filtered by status. Expiry is applied lazily.
	ListForInvitee(email, status string) ([]models.TripInvitation, error)

	// ListForInviter returns invitations sent by the user, optionally
	// filtered by status. Expiry is applied lazily.
	ListForInviter(inviterID, status string) ([]models.TripInvitation, error)
}

// DefaultInvitationService is the production implementation backed by
// MongoDB.
type DefaultInvitationService struct {
	Repo     invitationRepo.InvitationRepository
	TripRepo tripRepo.TripRepository
	UserRepo userRepo.UserRepository
	Notifier notification.NotificationService
}
