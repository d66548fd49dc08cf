package models

import "time"

// Invitation statuses. Pending invitations move to accepted or declined via
// the respond endpoint; expiry is lazy, checked against ExpiresAt on read.
const (
	InvitationStatusPending  = "pending"
	InvitationStatusAccepted = "accepted"
	InvitationStatusDeclined = "declined"
	InvitationStatusExpired  = "expired"
)

// TripInvitation links a trip, an inviter and an invitee email. The token is
// an opaque unique string used in place of the id in the respond endpoint.
// The permission payload mirrors the collaborator entry acceptance creates.
type TripInvitation struct {
	ID           string                  `bson:"id" json:"id"`
	TripID       string                  `bson:"tripId" json:"tripId"`
	InviterID    string                  `bson:"inviterId" json:"inviterId"`
	InviteeEmail string                  `bson:"inviteeEmail" json:"inviteeEmail"`
	Token        string                  `bson:"token" json:"token"`
	Role         string                  `bson:"role" json:"role"`
	Permissions  CollaboratorPermissions `bson:"permissions" json:"permissions"`
	Status       string                  `bson:"status" json:"status"`
	ExpiresAt    time.Time               `bson:"expiresAt" json:"expiresAt"`
	CreatedAt    time.Time               `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time               `bson:"updatedAt" json:"updatedAt"`
}

// Expired reports whether the invitation is past its expiry at the given time.
func (i *TripInvitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// Actionable reports whether a respond call may still transition the
// invitation.
func (i *TripInvitation) Actionable(now time.Time) bool {
	return i.Status == InvitationStatusPending && !i.Expired(now)
}
