package user

import (
	"fmt"
	"strings"
	"time"

	"roamly/config"
	"roamly/models"
	"roamly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register validates basic data, checks for duplicates, persists an
// unverified user with a pending OTP, and sends the OTP to the user's phone.
func (s *DefaultUserService) Register(req RegistrationRequest) (string, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" || req.Username == "" || req.PhoneNumber == "" {
		return "", ValidationError{Msg: "all fields are required"}
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return "", err
	}

	existing, err := s.Repo.GetByEmailWithProjection(req.Email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return "", fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return "", ErrDuplicateAccount
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return "", fmt.Errorf("registration failed, please try again")
	}

	otp, expiry, err := s.issueOTP(req.PhoneNumber)
	if err != nil {
		return "", err
	}

	userObj := models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hashedPassword),
		Verified:     false,
		OTPCode:      otp,
		OTPExpiresAt: &expiry,
		Friends:      []models.Friend{},
	}

	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("Register: failed to persist user", zap.Error(err))
		return "", fmt.Errorf("registration failed, please try again")
	}

	return userObj.ID, nil
}

// VerifyOTP matches the stored OTP against the provided one. On success the
// account becomes verified, the OTP is cleared, and a session token issued.
func (s *DefaultUserService) VerifyOTP(email, otp string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("verification failed, please try again")
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}
	if usr.Verified {
		return nil, ErrAlreadyVerified
	}
	if usr.OTPCode == "" || usr.OTPExpiresAt == nil || time.Now().After(*usr.OTPExpiresAt) {
		return nil, ErrOTPExpired
	}
	if usr.OTPCode != otp {
		return nil, ErrOTPMismatch
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, 24*time.Hour)
	if err != nil {
		utils.GetLogger().Error("VerifyOTP: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("verification failed, please try again")
	}

	fields := bson.M{
		"verified":  true,
		"otpCode":   "",
		"tokenHash": utils.HashToken(token),
	}
	if err := s.Repo.UpdateFields(usr.ID, fields); err != nil {
		utils.GetLogger().Error("VerifyOTP: failed to update user", zap.Error(err))
		return nil, fmt.Errorf("verification failed, please try again")
	}

	usr.Verified = true
	usr.OTPCode = ""
	return &AuthResponse{User: usr, Token: token}, nil
}

// issueOTP generates a fresh OTP, sends it, and returns it with its expiry.
func (s *DefaultUserService) issueOTP(phoneNumber string) (string, time.Time, error) {
	otp, err := utils.GenerateOTP(6)
	if err != nil {
		utils.GetLogger().Error("issueOTP: failed to generate OTP", zap.Error(err))
		return "", time.Time{}, fmt.Errorf("failed to initiate OTP")
	}

	ttl := time.Duration(config.AppConfig.OTPTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	expiry := time.Now().Add(ttl)

	message := fmt.Sprintf("Your Roamly verification code is: %s. It expires in %d minutes.", otp, int(ttl.Minutes()))
	if err := utils.SendOTPMessage(phoneNumber, message); err != nil {
		utils.GetLogger().Error("issueOTP: failed to send OTP", zap.Error(err))
		return "", time.Time{}, fmt.Errorf("failed to send OTP")
	}
	return otp, expiry, nil
}
