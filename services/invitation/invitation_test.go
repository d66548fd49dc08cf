package invitation

import (
	"errors"
	"testing"
	"time"

	tripRepo "roamly/database/repository/trip"
	"roamly/models"
	tripSvc "roamly/services/trip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// memTripRepo is an in-memory TripRepository shared with the invitation fake
// so the accept transaction can be observed end to end.
type memTripRepo struct {
	trips map[string]*models.Trip
}

func (f *memTripRepo) Create(t *models.Trip) error {
	f.trips[t.ID] = t
	return nil
}
func (f *memTripRepo) UpdateFields(id string, fields bson.M) error { return nil }
func (f *memTripRepo) Delete(id string) error { return nil }
func (f *memTripRepo) GetByID(id string) (*models.Trip, error) {
	t, ok := f.trips[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}
func (f *memTripRepo) ListForUser(userID string, filter tripRepo.TripFilter) ([]models.Trip, error) {
	return nil, nil
}
func (f *memTripRepo) Search(userID, query string) ([]models.Trip, error) { return nil, nil }
func (f *memTripRepo) Nearby(lng, lat, maxMeters float64) ([]models.Trip, error) {
	return nil, nil
}
func (f *memTripRepo) AddCollaborator(tripID string, collab models.Collaborator) (bool, error) {
	t, ok := f.trips[tripID]
	if !ok || t.CollaboratorFor(collab.UserID) != nil {
		return false, nil
	}
	t.Collaborators = append(t.Collaborators, collab)
	return true, nil
}
func (f *memTripRepo) IncrementStat(tripID, field string, delta float64) error { return nil }

// memInvitationRepo mirrors the Mongo implementation's transactional accept.
type memInvitationRepo struct {
	invitations map[string]*models.TripInvitation
	trips       *memTripRepo
}

func (f *memInvitationRepo) Create(inv *models.TripInvitation) error {
	cp := *inv
	f.invitations[inv.ID] = &cp
	return nil
}

func (f *memInvitationRepo) GetByToken(token string) (*models.TripInvitation, error) {
	for _, inv := range f.invitations {
		if inv.Token == token {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *memInvitationRepo) ListByInviteeEmail(email, status string) ([]models.TripInvitation, error) {
	var out []models.TripInvitation
	for _, inv := range f.invitations {
		if inv.InviteeEmail == email && (status == "" || inv.Status == status) {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (f *memInvitationRepo) ListByInviter(inviterID, status string) ([]models.TripInvitation, error) {
	var out []models.TripInvitation
	for _, inv := range f.invitations {
		if inv.InviterID == inviterID && (status == "" || inv.Status == status) {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (f *memInvitationRepo) HasPending(tripID, inviteeEmail string) (bool, error) {
	now := time.Now()
	for _, inv := range f.invitations {
		if inv.TripID == tripID && inv.InviteeEmail == inviteeEmail &&
			inv.Status == models.InvitationStatusPending && !inv.Expired(now) {
			return true, nil
		}
	}
	return false, nil
}

func (f *memInvitationRepo) UpdateStatus(id, status string) error {
	inv, ok := f.invitations[id]
	if !ok {
		return errors.New("not found")
	}
	inv.Status = status
	return nil
}

func (f *memInvitationRepo) AcceptWithCollaborator(invitationID, tripID string, collab models.Collaborator) error {
	inv, ok := f.invitations[invitationID]
	if !ok || !inv.Actionable(time.Now()) {
		return errors.New("invitation not pending")
	}
	inv.Status = models.InvitationStatusAccepted
	_, err := f.trips.AddCollaborator(tripID, collab)
	return err
}

func (f *memInvitationRepo) DeleteByTrip(tripID string) (int64, error) { return 0, nil }

// memUserRepo backs responder and invitee lookups.
type memUserRepo struct {
	users map[string]*models.User
	stats map[string]int
}

func (f *memUserRepo) Create(u *models.User) error { f.users[u.ID] = u; return nil }
func (f *memUserRepo) Update(u *models.User) error { return nil }
func (f *memUserRepo) UpdateFields(id string, fields bson.M) error { return nil }
func (f *memUserRepo) Delete(id string) error { return nil }
func (f *memUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}
func (f *memUserRepo) GetByIDWithProjection(id string, p bson.M) (*models.User, error) {
	return f.GetByID(id)
}
func (f *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *memUserRepo) GetByEmailWithProjection(email string, p bson.M) (*models.User, error) {
	return f.GetByEmail(email)
}
func (f *memUserRepo) GetByPhone(phone string) (*models.User, error) { return nil, nil }
func (f *memUserRepo) AddFriend(userID string, fr models.Friend) error { return nil }
func (f *memUserRepo) RemoveFriend(userID, friendUserID string) error { return nil }
func (f *memUserRepo) IncrementStat(id, field string, delta int) error {
	if f.stats == nil {
		f.stats = make(map[string]int)
	}
	f.stats[id+"/"+field] += delta
	return nil
}

// recordingNotifier counts notification calls.
type recordingNotifier struct {
	received, accepted, declined int
}

func (n *recordingNotifier) InvitationReceived(inv *models.TripInvitation, trip *models.Trip) {
	n.received++
}
func (n *recordingNotifier) InvitationAccepted(inv *models.TripInvitation, responder *models.User) {
	n.accepted++
}
func (n *recordingNotifier) InvitationDeclined(inv *models.TripInvitation) { n.declined++ }
func (n *recordingNotifier) FriendRequestReceived(req *models.FriendRequest, sender *models.User) {
}
func (n *recordingNotifier) FriendRequestAccepted(req *models.FriendRequest, recipient *models.User) {
}
func (n *recordingNotifier) List(userID string, unreadOnly bool) ([]models.Notification, error) {
	return nil, nil
}
func (n *recordingNotifier) MarkRead(id, userID string) error { return nil }
func (n *recordingNotifier) MarkAllRead(userID string) error { return nil }

type fixture struct {
	svc      *DefaultInvitationService
	trips    *memTripRepo
	invites  *memInvitationRepo
	users    *memUserRepo
	notifier *recordingNotifier
}

func newFixture() *fixture {
	trips := &memTripRepo{trips: make(map[string]*models.Trip)}
	invites := &memInvitationRepo{invitations: make(map[string]*models.TripInvitation), trips: trips}
	users := &memUserRepo{users: make(map[string]*models.User)}
	notifier := &recordingNotifier{}
	return &fixture{
		svc: &DefaultInvitationService{
			Repo:     invites,
			TripRepo: trips,
			UserRepo: users,
			Notifier: notifier,
		},
		trips:    trips,
		invites:  invites,
		users:    users,
		notifier: notifier,
	}
}

func (fx *fixture) seedTrip() *models.Trip {
	t := &models.Trip{
		ID:            "trip-1",
		Title:         "Paris Adventure",
		OwnerID:       "owner-1",
		Visibility:    models.TripVisibilityPrivate,
		Collaborators: []models.Collaborator{},
	}
	fx.trips.trips[t.ID] = t
	return t
}

func (fx *fixture) seedInvitee() *models.User {
	u := &models.User{ID: "invitee-1", Username: "ada", Email: "ada@example.com", Verified: true}
	fx.users.users[u.ID] = u
	return u
}

func TestCreateInvitationRejectsDuplicatePending(t *testing.T) {
	fx := newFixture()
	fx.seedTrip()

	req := CreateInvitationRequest{
		TripID:       "trip-1",
		InviteeEmail: "ada@example.com",
		Role:         models.RoleEditor,
	}
	first, err := fx.svc.CreateInvitation("owner-1", req)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusPending, first.Status)
	assert.NotEmpty(t, first.Token)
	assert.True(t, first.ExpiresAt.After(time.Now()))

	_, err = fx.svc.CreateInvitation("owner-1", req)
	assert.ErrorIs(t, err, ErrDuplicatePending)
}

func TestCreateInvitationRequiresInvitePermission(t *testing.T) {
	fx := newFixture()
	trip := fx.seedTrip()
	trip.Collaborators = append(trip.Collaborators, models.Collaborator{
		UserID:      "viewer-1",
		Role:        models.RoleViewer,
		Permissions: models.CollaboratorPermissions{},
	})

	req := CreateInvitationRequest{TripID: "trip-1", InviteeEmail: "ada@example.com"}
	_, err := fx.svc.CreateInvitation("viewer-1", req)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestRespondAcceptAddsExactlyOneCollaborator(t *testing.T) {
	fx := newFixture()
	fx.seedTrip()
	fx.seedInvitee()

	perms := models.CollaboratorPermissions{CanEdit: true, CanAddBookings: true}
	inv, err := fx.svc.CreateInvitation("owner-1", CreateInvitationRequest{
		TripID:       "trip-1",
		InviteeEmail: "ada@example.com",
		Role:         models.RoleEditor,
		Permissions:  perms,
	})
	require.NoError(t, err)

	accepted, err := fx.svc.Respond(inv.Token, "accept", "invitee-1")
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusAccepted, accepted.Status)

	trip := fx.trips.trips["trip-1"]
	require.Len(t, trip.Collaborators, 1)
	collab := trip.Collaborators[0]
	assert.Equal(t, "invitee-1", collab.UserID)
	assert.Equal(t, models.RoleEditor, collab.Role)
	assert.Equal(t, perms, collab.Permissions)

	assert.Equal(t, 1, fx.users.stats["invitee-1/tripsJoined"])
	assert.Equal(t, 1, fx.notifier.accepted)
}

func TestRespondOnNonPendingLeavesTripUntouched(t *testing.T) {
	fx := newFixture()
	fx.seedTrip()
	fx.seedInvitee()

	inv, err := fx.svc.CreateInvitation("owner-1", CreateInvitationRequest{
		TripID:       "trip-1",
		InviteeEmail: "ada@example.com",
	})
	require.NoError(t, err)

	_, err = fx.svc.Respond(inv.Token, "decline", "")
	require.NoError(t, err)

	// A second respond on the declined invitation must not mutate the trip.
	_, err = fx.svc.Respond(inv.Token, "accept", "invitee-1")
	assert.ErrorIs(t, err, ErrNotActionable)
	assert.Empty(t, fx.trips.trips["trip-1"].Collaborators)
}

func TestRespondOnExpiredPersistsExpiry(t *testing.T) {
	fx := newFixture()
	fx.seedTrip()
	fx.seedInvitee()

	inv, err := fx.svc.CreateInvitation("owner-1", CreateInvitationRequest{
		TripID:       "trip-1",
		InviteeEmail: "ada@example.com",
	})
	require.NoError(t, err)

	// Backdate the expiry.
	fx.invites.invitations[inv.ID].ExpiresAt = time.Now().Add(-time.Hour)

	_, err = fx.svc.Respond(inv.Token, "accept", "invitee-1")
	assert.ErrorIs(t, err, ErrNotActionable)
	assert.Equal(t, models.InvitationStatusExpired, fx.invites.invitations[inv.ID].Status)
	assert.Empty(t, fx.trips.trips["trip-1"].Collaborators)
}

func TestRespondAcceptRejectsWrongInvitee(t *testing.T) {
	fx := newFixture()
	fx.seedTrip()
	fx.seedInvitee()
	fx.users.users["other-1"] = &models.User{ID: "other-1", Email: "other@example.com", Verified: true}

	inv, err := fx.svc.CreateInvitation("owner-1", CreateInvitationRequest{
		TripID:       "trip-1",
		InviteeEmail: "ada@example.com",
	})
	require.NoError(t, err)

	_, err = fx.svc.Respond(inv.Token, "accept", "other-1")
	assert.ErrorIs(t, err, ErrWrongInvitee)
	assert.Empty(t, fx.trips.trips["trip-1"].Collaborators)
}

func TestRespondDeclineWorksAnonymously(t *testing.T) {
	fx := newFixture()
	fx.seedTrip()

	inv, err := fx.svc.CreateInvitation("owner-1", CreateInvitationRequest{
		TripID:       "trip-1",
		InviteeEmail: "nobody@example.com",
	})
	require.NoError(t, err)

	declined, err := fx.svc.Respond(inv.Token, "decline", "")
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusDeclined, declined.Status)
	assert.Equal(t, 1, fx.notifier.declined)
}

func TestListForInviteeAppliesLazyExpiry(t *testing.T) {
	fx := newFixture()
	fx.seedTrip()

	inv, err := fx.svc.CreateInvitation("owner-1", CreateInvitationRequest{
		TripID:       "trip-1",
		InviteeEmail: "ada@example.com",
	})
	require.NoError(t, err)
	fx.invites.invitations[inv.ID].ExpiresAt = time.Now().Add(-time.Minute)

	listed, err := fx.svc.ListForInvitee("ada@example.com", "")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, models.InvitationStatusExpired, listed[0].Status)
	assert.Equal(t, models.InvitationStatusExpired, fx.invites.invitations[inv.ID].Status)
}

func TestCreateInvitationUnknownTrip(t *testing.T) {
	fx := newFixture()
	_, err := fx.svc.CreateInvitation("owner-1", CreateInvitationRequest{
		TripID:       "missing",
		InviteeEmail: "ada@example.com",
	})
	assert.ErrorIs(t, err, tripSvc.ErrTripNotFound)
}
