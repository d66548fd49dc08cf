package user

import (
	"fmt"

	"roamly/models"
	"roamly/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetUserByID retrieves a user by id.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}
	return usr, nil
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}
	return usr, nil
}

// UpdateProfile applies the provided profile fields and returns the updated
// user.
func (s *DefaultUserService) UpdateProfile(id string, update ProfileUpdate) (*models.User, error) {
	fields := bson.M{}
	if update.Username != nil {
		if *update.Username == "" {
			return nil, ValidationError{Msg: "username cannot be empty"}
		}
		fields["username"] = *update.Username
	}
	if update.ProfileName != nil {
		fields["profileName"] = *update.ProfileName
	}
	if update.AvatarURL != nil {
		fields["avatarUrl"] = *update.AvatarURL
	}
	if update.Bio != nil {
		fields["bio"] = *update.Bio
	}
	if update.Preferences != nil {
		fields["preferences"] = *update.Preferences
	}
	if len(fields) == 0 {
		return nil, ValidationError{Msg: "no fields to update"}
	}

	if err := s.Repo.UpdateFields(id, fields); err != nil {
		utils.GetLogger().Error("UpdateProfile: update failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("profile update failed")
	}
	return s.GetUserByID(id)
}

// ChangePassword verifies the current password and stores a new hash. The
// active session is revoked so other devices must sign in again.
func (s *DefaultUserService) ChangePassword(id, currentPassword, newPassword string) error {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if usr == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("ChangePassword: failed to hash password", zap.Error(err))
		return fmt.Errorf("password change failed")
	}

	if err := s.Repo.UpdateFields(id, bson.M{"passwordHash": string(hashed)}); err != nil {
		utils.GetLogger().Error("ChangePassword: update failed", zap.Error(err))
		return fmt.Errorf("password change failed")
	}
	return s.RevokeAuthToken(id)
}

// DeleteUser removes the account.
func (s *DefaultUserService) DeleteUser(id string) error {
	if err := s.RevokeAuthToken(id); err != nil {
		utils.GetLogger().Warn("DeleteUser: revoke failed", zap.String("id", id), zap.Error(err))
	}
	return s.Repo.Delete(id)
}
