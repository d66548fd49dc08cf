package models

import "time"

// Friend statuses mirror the friend-request lifecycle.
const (
	FriendStatusPending  = "pending"
	FriendStatusAccepted = "accepted"
	FriendStatusDeclined = "declined"
)

// Friend is an embedded entry in a user's friend list.
type Friend struct {
	UserID string    `bson:"userId" json:"userId"`
	Status string    `bson:"status" json:"status"`
	Since  time.Time `bson:"since" json:"since"`
}

// UserStats holds aggregate counters shown on the profile screen.
type UserStats struct {
	TripsCreated int `bson:"tripsCreated" json:"tripsCreated"`
	TripsJoined  int `bson:"tripsJoined" json:"tripsJoined"`
}

// User represents a registered account.
type User struct {
	ID           string `bson:"id" json:"id"`
	Username     string `bson:"username" json:"username"`
	Email        string `bson:"email" json:"email"`
	PhoneNumber  string `bson:"phoneNumber" json:"phoneNumber"`
	PasswordHash string `bson:"passwordHash" json:"-"`

	// Verification state. The OTP code and its expiry live on the document
	// so a pending verification survives a server restart.
	Verified     bool       `bson:"verified" json:"verified"`
	OTPCode      string     `bson:"otpCode,omitempty" json:"-"`
	OTPExpiresAt *time.Time `bson:"otpExpiresAt,omitempty" json:"-"`

	ProfileName string   `bson:"profileName,omitempty" json:"profileName,omitempty"`
	AvatarURL   string   `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Bio         string   `bson:"bio,omitempty" json:"bio,omitempty"`
	Preferences []string `bson:"preferences,omitempty" json:"preferences,omitempty"`

	Friends []Friend  `bson:"friends" json:"friends"`
	Stats   UserStats `bson:"stats" json:"stats"`

	// SHA-256 hash of the active session token. Empty means signed out.
	TokenHash string `bson:"tokenHash,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
