package user

import (
	userRepo "roamly/database/repository/user"
	"roamly/models"
)

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// RegistrationRequest carries the fields required to open an account.
type RegistrationRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// ProfileUpdate carries the mutable profile fields.
type ProfileUpdate struct {
	Username    *string   `json:"username,omitempty"`
	ProfileName *string   `json:"profileName,omitempty"`
	AvatarURL   *string   `json:"avatarUrl,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	Preferences *[]string `json:"preferences,omitempty"`
}

// UserService defines account management operations.
type UserService interface {
	// Register creates an unverified account and initiates OTP
	// verification. It returns the new user's id.
	Register(req RegistrationRequest) (string, error)

	// VerifyOTP matches the pending OTP; on success the account becomes
	// verified and a session token is issued.
	VerifyOTP(email, otp string) (*AuthResponse, error)

	// Authenticate signs a verified user in. An unverified account yields
	// an UnverifiedError carrying a fresh OTP challenge.
	Authenticate(email, password string) (*AuthResponse, error)

	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateProfile(id string, update ProfileUpdate) (*models.User, error)
	ChangePassword(id, currentPassword, newPassword string) error
	RevokeAuthToken(id string) error
	DeleteUser(id string) error
}

// DefaultUserService is the production implementation backed by MongoDB.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
