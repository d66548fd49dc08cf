package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"roamly/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies the credentials and issues a session token. For an
// unverified account with valid credentials, a fresh OTP is issued and an
// UnverifiedError returned so the client can route to the OTP screen.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("sign in failed, please try again")
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !usr.Verified {
		otp, expiry, err := s.issueOTP(usr.PhoneNumber)
		if err != nil {
			return nil, err
		}
		fields := bson.M{"otpCode": otp, "otpExpiresAt": expiry}
		if err := s.Repo.UpdateFields(usr.ID, fields); err != nil {
			utils.GetLogger().Error("Authenticate: failed to store OTP", zap.Error(err))
			return nil, fmt.Errorf("sign in failed, please try again")
		}
		return nil, UnverifiedError{Email: usr.Email}
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, 24*time.Hour)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("sign in failed, please try again")
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateFields(usr.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		utils.GetLogger().Error("Authenticate: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("sign in failed, please try again")
	}

	// Warm the auth cache so the first authenticated request skips the DB.
	cacheCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cacheKey := utils.AuthCachePrefix + usr.ID
	if authCache := utils.AuthCacheClient; authCache != nil {
		_ = authCache.Set(cacheCtx, cacheKey, tokenHash, utils.AuthCacheTTL).Err()
	}

	return &AuthResponse{User: usr, Token: token}, nil
}

// RevokeAuthToken signs the user out everywhere by clearing the stored token
// hash and evicting the auth cache entry.
func (s *DefaultUserService) RevokeAuthToken(id string) error {
	if err := s.Repo.UpdateFields(id, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if authCache := utils.AuthCacheClient; authCache != nil {
		_ = authCache.Del(ctx, utils.AuthCachePrefix+id).Err()
	}
	return nil
}
