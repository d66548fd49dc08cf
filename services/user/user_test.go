package user

import (
	"errors"
	"testing"
	"time"

	"roamly/models"
	"roamly/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// memUserRepo is an in-memory UserRepository applying the field updates the
// service issues.
type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (f *memUserRepo) Create(u *models.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}
func (f *memUserRepo) Update(u *models.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}
func (f *memUserRepo) UpdateFields(id string, fields bson.M) error {
	u, ok := f.users[id]
	if !ok {
		return errors.New("not found")
	}
	for k, v := range fields {
		switch k {
		case "username":
			u.Username = v.(string)
		case "verified":
			u.Verified = v.(bool)
		case "otpCode":
			u.OTPCode = v.(string)
		case "otpExpiresAt":
			t := v.(time.Time)
			u.OTPExpiresAt = &t
		case "tokenHash":
			u.TokenHash = v.(string)
		case "passwordHash":
			u.PasswordHash = v.(string)
		case "profileName":
			u.ProfileName = v.(string)
		case "avatarUrl":
			u.AvatarURL = v.(string)
		case "bio":
			u.Bio = v.(string)
		case "preferences":
			u.Preferences = v.([]string)
		}
	}
	return nil
}
func (f *memUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}
func (f *memUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (f *memUserRepo) GetByIDWithProjection(id string, p bson.M) (*models.User, error) {
	return f.GetByID(id)
}
func (f *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (f *memUserRepo) GetByEmailWithProjection(email string, p bson.M) (*models.User, error) {
	return f.GetByEmail(email)
}
func (f *memUserRepo) GetByPhone(phone string) (*models.User, error) {
	for _, u := range f.users {
		if u.PhoneNumber == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (f *memUserRepo) AddFriend(userID string, fr models.Friend) error { return nil }
func (f *memUserRepo) RemoveFriend(userID, friendUserID string) error { return nil }
func (f *memUserRepo) IncrementStat(id, field string, delta int) error { return nil }

func newUserService() (*DefaultUserService, *memUserRepo) {
	repo := newMemUserRepo()
	return &DefaultUserService{Repo: repo}, repo
}

func validRegistration() RegistrationRequest {
	return RegistrationRequest{
		Username:    "ada",
		Email:       "Ada@Example.com",
		PhoneNumber: "+33612345678",
		Password:    "s3curepass",
	}
}

func TestRegisterCreatesUnverifiedUserWithOTP(t *testing.T) {
	svc, repo := newUserService()

	id, err := svc.Register(validRegistration())
	require.NoError(t, err)

	stored := repo.users[id]
	require.NotNil(t, stored)
	assert.Equal(t, "ada@example.com", stored.Email)
	assert.False(t, stored.Verified)
	assert.Len(t, stored.OTPCode, 6)
	require.NotNil(t, stored.OTPExpiresAt)
	assert.True(t, stored.OTPExpiresAt.After(time.Now()))
	assert.NotEqual(t, "s3curepass", stored.PasswordHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register(validRegistration())
	require.NoError(t, err)

	_, err = svc.Register(validRegistration())
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestRegisterEnforcesPasswordComplexity(t *testing.T) {
	svc, _ := newUserService()

	cases := []string{"short1", "allletters", "12345678"}
	for _, pw := range cases {
		req := validRegistration()
		req.Password = pw
		_, err := svc.Register(req)
		var ve ValidationError
		require.ErrorAs(t, err, &ve, "password %q should be rejected", pw)
	}
}

func TestVerifyOTPLifecycle(t *testing.T) {
	svc, repo := newUserService()

	id, err := svc.Register(validRegistration())
	require.NoError(t, err)
	otp := repo.users[id].OTPCode

	_, err = svc.VerifyOTP("ada@example.com", "000000")
	if otp != "000000" {
		assert.ErrorIs(t, err, ErrOTPMismatch)
	}

	resp, err := svc.VerifyOTP("ada@example.com", otp)
	require.NoError(t, err)
	assert.True(t, resp.User.Verified)
	assert.NotEmpty(t, resp.Token)

	stored := repo.users[id]
	assert.True(t, stored.Verified)
	assert.Empty(t, stored.OTPCode)
	assert.Equal(t, utils.HashToken(resp.Token), stored.TokenHash)

	// Verifying twice is rejected.
	_, err = svc.VerifyOTP("ada@example.com", otp)
	assert.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestVerifyOTPExpired(t *testing.T) {
	svc, repo := newUserService()

	id, err := svc.Register(validRegistration())
	require.NoError(t, err)

	past := time.Now().Add(-time.Minute)
	repo.users[id].OTPExpiresAt = &past

	_, err = svc.VerifyOTP("ada@example.com", repo.users[id].OTPCode)
	assert.ErrorIs(t, err, ErrOTPExpired)
}

func TestAuthenticateVerifiedUser(t *testing.T) {
	svc, repo := newUserService()

	id, err := svc.Register(validRegistration())
	require.NoError(t, err)
	_, err = svc.VerifyOTP("ada@example.com", repo.users[id].OTPCode)
	require.NoError(t, err)

	resp, err := svc.Authenticate("ada@example.com", "s3curepass")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, utils.HashToken(resp.Token), repo.users[id].TokenHash)

	_, err = svc.Authenticate("ada@example.com", "wrongpass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("ghost@example.com", "s3curepass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnverifiedIssuesFreshOTP(t *testing.T) {
	svc, repo := newUserService()

	id, err := svc.Register(validRegistration())
	require.NoError(t, err)
	firstOTP := repo.users[id].OTPCode

	_, err = svc.Authenticate("ada@example.com", "s3curepass")
	var unverified UnverifiedError
	require.ErrorAs(t, err, &unverified)
	assert.Equal(t, "ada@example.com", unverified.Email)

	// The stored OTP was reissued and stays pending on the document.
	assert.Len(t, repo.users[id].OTPCode, 6)
	_ = firstOTP // a fresh code may or may not collide; only presence is guaranteed
	assert.False(t, repo.users[id].Verified)
}

func TestChangePasswordRevokesSession(t *testing.T) {
	svc, repo := newUserService()

	hash, err := bcrypt.GenerateFromPassword([]byte("oldpass12"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo.users["u1"] = &models.User{
		ID:           "u1",
		Email:        "ada@example.com",
		PasswordHash: string(hash),
		Verified:     true,
		TokenHash:    "live-session",
	}

	err = svc.ChangePassword("u1", "wrongpass1", "newpass12")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword("u1", "oldpass12", "newpass12"))
	stored := repo.users["u1"]
	assert.Empty(t, stored.TokenHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpass12")))
}

func TestRevokeAuthTokenClearsHash(t *testing.T) {
	svc, repo := newUserService()
	repo.users["u1"] = &models.User{ID: "u1", TokenHash: "live-session"}

	require.NoError(t, svc.RevokeAuthToken("u1"))
	assert.Empty(t, repo.users["u1"].TokenHash)
}
