package models

import "time"

// Friend-request contact kinds, distinguished by a regex classifier.
const (
	ContactKindEmail = "email"
	ContactKindPhone = "phone"
)

// FriendRequest is a pending friendship between two users. The recipient is
// addressed by email or phone number; RecipientID is resolved at creation if
// the contact matches a registered user.
type FriendRequest struct {
	ID          string    `bson:"id" json:"id"`
	SenderID    string    `bson:"senderId" json:"senderId"`
	Contact     string    `bson:"contact" json:"contact"`
	ContactKind string    `bson:"contactKind" json:"contactKind"`
	RecipientID string    `bson:"recipientId,omitempty" json:"recipientId,omitempty"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
