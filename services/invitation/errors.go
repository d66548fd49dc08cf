package invitation

import "errors"

// Sentinel errors mapped to HTTP statuses in the handlers.
var (
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrNotAuthorized      = errors.New("not authorized to invite for this trip")

	// ErrNotActionable is returned when responding to an invitation that is
	// no longer pending or has passed its expiry. The trip is untouched.
	ErrNotActionable = errors.New("invitation not actionable")

	// ErrDuplicatePending is returned when a pending invitation already
	// exists for the same trip and invitee email.
	ErrDuplicatePending = errors.New("a pending invitation already exists for this email")

	// ErrWrongInvitee is returned when the authenticated responder's email
	// does not match the invitation's invitee email.
	ErrWrongInvitee = errors.New("invitation was issued to a different email")
)

// ValidationError wraps a user-correctable input problem (400).
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }
