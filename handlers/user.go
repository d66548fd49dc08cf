package handlers

import (
	"errors"
	"net/http"

	userSvc "roamly/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserService is assigned during startup wiring.
var UserService userSvc.UserService

// respondUserError maps user service errors onto HTTP statuses.
func respondUserError(c *gin.Context, err error) {
	var ve userSvc.ValidationError
	var unverified userSvc.UnverifiedError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Msg})
	case errors.As(err, &unverified):
		c.JSON(http.StatusForbidden, gin.H{
			"error":       "Account not verified",
			"requiresOTP": true,
			"email":       unverified.Email,
		})
	case errors.Is(err, userSvc.ErrDuplicateAccount):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, userSvc.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, userSvc.ErrOTPMismatch), errors.Is(err, userSvc.ErrOTPExpired),
		errors.Is(err, userSvc.ErrAlreadyVerified):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, userSvc.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		getLogger(c).Error("user operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

// RegisterUserHandler opens an unverified account and starts OTP verification.
func RegisterUserHandler(c *gin.Context) {
	var req userSvc.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	id, err := UserService.Register(req)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":          id,
		"requiresOTP": true,
		"message":     "Account created. Verify the OTP sent to your phone.",
	})
}

// VerifyOTPHandler completes registration and returns a session token.
func VerifyOTPHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := UserService.VerifyOTP(req.Email, req.OTP)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AuthenticateUserHandler signs a verified user in.
func AuthenticateUserHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := UserService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfileHandler returns the authenticated user's profile.
func GetProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	usr, err := UserService.GetUserByID(userID)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateProfileHandler applies a partial profile update.
func UpdateProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var update userSvc.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	usr, err := UserService.UpdateProfile(userID, update)
	if err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// ChangePasswordHandler rotates the password and revokes the session.
func ChangePasswordHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := UserService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed. Sign in again."})
}

// RevokeUserTokenHandler signs the user out everywhere.
func RevokeUserTokenHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := UserService.RevokeAuthToken(userID); err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session revoked"})
}

// DeleteUserHandler removes the authenticated user's account.
func DeleteUserHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := UserService.DeleteUser(userID); err != nil {
		respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
