package invitationRepo

import "roamly/models"

// InvitationRepository defines data access for the trip_invitations
// collection.
type InvitationRepository interface {
	Create(inv *models.TripInvitation) error
	GetByToken(token string) (*models.TripInvitation, error)
	ListByInviteeEmail(email, status string) ([]models.TripInvitation, error)
	ListByInviter(inviterID, status string) ([]models.TripInvitation, error)

	// HasPending reports whether a pending invitation to the same email
	// already exists for the trip.
	HasPending(tripID, inviteeEmail string) (bool, error)

	UpdateStatus(id, status string) error

	// AcceptWithCollaborator flips the invitation to accepted and pushes the
	// collaborator entry onto the trip in a single transaction.
	AcceptWithCollaborator(invitationID, tripID string, collab models.Collaborator) error

	// DeleteByTrip removes every invitation referencing the trip. Used by
	// the trip cascade delete.
	DeleteByTrip(tripID string) (int64, error)
}
