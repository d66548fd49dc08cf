package trip

import "roamly/models"

// Capability checks are consolidated here and used by every handler that
// touches a trip, its bookings, or its invitations. Ownership and permission
// flags are never compared inline anywhere else.

// IsOwner reports whether the user owns the trip.
func IsOwner(t *models.Trip, userID string) bool {
	return t.OwnerID == userID
}

// CanView reports whether the user may read the trip.
func CanView(t *models.Trip, userID string) bool {
	if IsOwner(t, userID) || t.Visibility == models.TripVisibilityPublic {
		return true
	}
	return t.CollaboratorFor(userID) != nil
}

// CanEdit reports whether the user may mutate the trip's fields.
func CanEdit(t *models.Trip, userID string) bool {
	if IsOwner(t, userID) {
		return true
	}
	c := t.CollaboratorFor(userID)
	return c != nil && c.Permissions.CanEdit
}

// CanAddBookings reports whether the user may create or modify bookings on
// the trip.
func CanAddBookings(t *models.Trip, userID string) bool {
	if IsOwner(t, userID) {
		return true
	}
	c := t.CollaboratorFor(userID)
	return c != nil && c.Permissions.CanAddBookings
}

// CanInvite reports whether the user may invite collaborators to the trip.
func CanInvite(t *models.Trip, userID string) bool {
	if IsOwner(t, userID) {
		return true
	}
	c := t.CollaboratorFor(userID)
	return c != nil && c.Permissions.CanInvite
}
