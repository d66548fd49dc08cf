package trip

import "errors"

// Sentinel errors mapped to HTTP statuses in the handlers.
var (
	ErrTripNotFound  = errors.New("trip not found")
	ErrNotAuthorized = errors.New("not authorized for this trip")
)

// ValidationError wraps a user-correctable input problem (400).
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }
