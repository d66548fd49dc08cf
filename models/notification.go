package models

import "time"

// Notification types emitted by the invitation and friend services.
const (
	NotificationInvitationReceived = "invitation_received"
	NotificationInvitationAccepted = "invitation_accepted"
	NotificationInvitationDeclined = "invitation_declined"
	NotificationFriendRequest      = "friend_request"
	NotificationFriendAccepted     = "friend_accepted"
)

// Notification is a per-user message with a read flag. ExpireAt, when set,
// is honored by a Mongo TTL index; no application sweeper exists.
type Notification struct {
	ID        string            `bson:"id" json:"id"`
	UserID    string            `bson:"userId" json:"userId"`
	Type      string            `bson:"type" json:"type"`
	Title     string            `bson:"title" json:"title"`
	Body      string            `bson:"body" json:"body"`
	Data      map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool              `bson:"read" json:"read"`
	ExpireAt  *time.Time        `bson:"expireAt,omitempty" json:"expireAt,omitempty"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
}
