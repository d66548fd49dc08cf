package trip

import (
	"testing"

	"roamly/models"

	"github.com/stretchr/testify/assert"
)

func tripWithCollaborator(visibility string, perms models.CollaboratorPermissions) *models.Trip {
	return &models.Trip{
		ID:         "trip-1",
		OwnerID:    "owner-1",
		Visibility: visibility,
		Collaborators: []models.Collaborator{
			{UserID: "collab-1", Role: models.RoleEditor, Permissions: perms},
		},
	}
}

func TestCapabilityChecks(t *testing.T) {
	cases := []struct {
		name           string
		visibility     string
		perms          models.CollaboratorPermissions
		userID         string
		canView        bool
		canEdit        bool
		canAddBookings bool
		canInvite      bool
	}{
		{
			name:       "owner has every capability",
			visibility: models.TripVisibilityPrivate,
			userID:     "owner-1",
			canView:    true, canEdit: true, canAddBookings: true, canInvite: true,
		},
		{
			name:       "stranger sees nothing on a private trip",
			visibility: models.TripVisibilityPrivate,
			userID:     "stranger",
		},
		{
			name:       "stranger may view a public trip only",
			visibility: models.TripVisibilityPublic,
			userID:     "stranger",
			canView:    true,
		},
		{
			name:       "collaborator without flags may only view",
			visibility: models.TripVisibilityPrivate,
			userID:     "collab-1",
			canView:    true,
		},
		{
			name:       "collaborator flags map one to one",
			visibility: models.TripVisibilityPrivate,
			perms:      models.CollaboratorPermissions{CanEdit: true, CanAddBookings: true},
			userID:     "collab-1",
			canView:    true, canEdit: true, canAddBookings: true,
		},
		{
			name:       "invite flag alone grants inviting",
			visibility: models.TripVisibilityPrivate,
			perms:      models.CollaboratorPermissions{CanInvite: true},
			userID:     "collab-1",
			canView:    true, canInvite: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := tripWithCollaborator(tc.visibility, tc.perms)
			assert.Equal(t, tc.canView, CanView(tr, tc.userID))
			assert.Equal(t, tc.canEdit, CanEdit(tr, tc.userID))
			assert.Equal(t, tc.canAddBookings, CanAddBookings(tr, tc.userID))
			assert.Equal(t, tc.canInvite, CanInvite(tr, tc.userID))
		})
	}
}

func TestIsOwner(t *testing.T) {
	tr := &models.Trip{OwnerID: "owner-1"}
	assert.True(t, IsOwner(tr, "owner-1"))
	assert.False(t, IsOwner(tr, "collab-1"))
}
