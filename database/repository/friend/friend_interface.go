package friendRepo

import "roamly/models"

// FriendRequestRepository defines data access for the friend_requests
// collection.
type FriendRequestRepository interface {
	Create(req *models.FriendRequest) error
	GetByID(id string) (*models.FriendRequest, error)
	ListBySender(senderID string) ([]models.FriendRequest, error)
	ListByRecipient(recipientID string) ([]models.FriendRequest, error)

	// HasPendingBetween reports whether a pending request already links the
	// two users in either direction.
	HasPendingBetween(userA, userB string) (bool, error)

	UpdateStatus(id, status string) error
}
