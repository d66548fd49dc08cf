package user

import "errors"

// Sentinel errors mapped to HTTP statuses in the handlers.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrOTPMismatch        = errors.New("OTP does not match")
	ErrOTPExpired         = errors.New("OTP expired")
	ErrAlreadyVerified    = errors.New("account already verified")
	ErrDuplicateAccount   = errors.New("a user with this email already exists")
)

// UnverifiedError signals that credentials were valid but the account still
// requires OTP verification. A fresh OTP has been issued when it is returned.
type UnverifiedError struct {
	Email string
}

func (e UnverifiedError) Error() string {
	return "account not verified; OTP required for " + e.Email
}

// ValidationError wraps a user-correctable input problem (400).
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }
