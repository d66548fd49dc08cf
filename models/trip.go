package models

import "time"

// Trip visibility levels.
const (
	TripVisibilityPrivate = "private"
	TripVisibilityFriends = "friends"
	TripVisibilityPublic  = "public"
)

// Trip lifecycle statuses.
const (
	TripStatusDraft     = "draft"
	TripStatusValidated = "validated"
)

// Collaborator roles.
const (
	RoleOwner  = "owner"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// CollaboratorPermissions are the explicit capability flags attached to a
// collaborator entry (and to the invitation that produces it).
type CollaboratorPermissions struct {
	CanEdit        bool `bson:"canEdit" json:"canEdit"`
	CanAddBookings bool `bson:"canAddBookings" json:"canAddBookings"`
	CanInvite      bool `bson:"canInvite" json:"canInvite"`
}

// Collaborator is an embedded entry in a trip's collaborator list.
type Collaborator struct {
	UserID      string                  `bson:"userId" json:"userId"`
	Role        string                  `bson:"role" json:"role"`
	JoinedAt    time.Time               `bson:"joinedAt" json:"joinedAt"`
	Permissions CollaboratorPermissions `bson:"permissions" json:"permissions"`
}

// TripStats holds denormalized aggregates maintained by the booking and
// address services.
type TripStats struct {
	TotalBookings  int     `bson:"totalBookings" json:"totalBookings"`
	TotalAddresses int     `bson:"totalAddresses" json:"totalAddresses"`
	EstimatedCost  float64 `bson:"estimatedCost" json:"estimatedCost"`
}

// Trip represents a planned trip owned by a user.
type Trip struct {
	ID            string         `bson:"id" json:"id"`
	Title         string         `bson:"title" json:"title"`
	Destination   string         `bson:"destination" json:"destination"`
	Description   string         `bson:"description,omitempty" json:"description,omitempty"`
	StartDate     time.Time      `bson:"startDate" json:"startDate"`
	EndDate       time.Time      `bson:"endDate" json:"endDate"`
	OwnerID       string         `bson:"ownerId" json:"ownerId"`
	Collaborators []Collaborator `bson:"collaborators" json:"collaborators"`
	Visibility    string         `bson:"visibility" json:"visibility"`
	Status        string         `bson:"status" json:"status"`
	Stats         TripStats      `bson:"stats" json:"stats"`
	Location      *GeoPoint      `bson:"location,omitempty" json:"location,omitempty"`
	Tags          []string       `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// CollaboratorFor returns the collaborator entry for the given user, if any.
func (t *Trip) CollaboratorFor(userID string) *Collaborator {
	for i := range t.Collaborators {
		if t.Collaborators[i].UserID == userID {
			return &t.Collaborators[i]
		}
	}
	return nil
}
