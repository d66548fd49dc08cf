package trip

import (
	"errors"
	"testing"
	"time"

	tripRepo "roamly/database/repository/trip"
	"roamly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeTripRepo is an in-memory TripRepository.
type fakeTripRepo struct {
	trips map[string]*models.Trip
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: make(map[string]*models.Trip)}
}

func (f *fakeTripRepo) Create(t *models.Trip) error {
	cp := *t
	f.trips[t.ID] = &cp
	return nil
}

func (f *fakeTripRepo) UpdateFields(id string, fields bson.M) error {
	t, ok := f.trips[id]
	if !ok {
		return errors.New("not found")
	}
	for k, v := range fields {
		switch k {
		case "title":
			t.Title = v.(string)
		case "destination":
			t.Destination = v.(string)
		case "description":
			t.Description = v.(string)
		case "startDate":
			t.StartDate = v.(time.Time)
		case "endDate":
			t.EndDate = v.(time.Time)
		case "visibility":
			t.Visibility = v.(string)
		case "status":
			t.Status = v.(string)
		case "tags":
			t.Tags = v.([]string)
		}
	}
	return nil
}

func (f *fakeTripRepo) Delete(id string) error {
	delete(f.trips, id)
	return nil
}

func (f *fakeTripRepo) GetByID(id string) (*models.Trip, error) {
	t, ok := f.trips[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTripRepo) ListForUser(userID string, filter tripRepo.TripFilter) ([]models.Trip, error) {
	var out []models.Trip
	for _, t := range f.trips {
		if t.OwnerID == userID || t.CollaboratorFor(userID) != nil {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTripRepo) Search(userID, query string) ([]models.Trip, error) {
	return nil, nil
}

func (f *fakeTripRepo) Nearby(lng, lat, maxMeters float64) ([]models.Trip, error) {
	return nil, nil
}

func (f *fakeTripRepo) AddCollaborator(tripID string, collab models.Collaborator) (bool, error) {
	t, ok := f.trips[tripID]
	if !ok {
		return false, nil
	}
	if t.CollaboratorFor(collab.UserID) != nil {
		return false, nil
	}
	t.Collaborators = append(t.Collaborators, collab)
	return true, nil
}

func (f *fakeTripRepo) IncrementStat(tripID, field string, delta float64) error {
	t, ok := f.trips[tripID]
	if !ok {
		return errors.New("not found")
	}
	switch field {
	case "totalBookings":
		t.Stats.TotalBookings += int(delta)
	case "totalAddresses":
		t.Stats.TotalAddresses += int(delta)
	case "estimatedCost":
		t.Stats.EstimatedCost += delta
	}
	return nil
}

// fakeBookingRepo tracks only what the cascade delete needs.
type fakeBookingRepo struct {
	byTrip map[string][]models.Booking
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.byTrip[b.TripID] = append(f.byTrip[b.TripID], *b)
	return nil
}
func (f *fakeBookingRepo) Update(b *models.Booking) error { return nil }
func (f *fakeBookingRepo) Delete(id string) error { return nil }
func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) ListByTrip(id string) ([]models.Booking, error) {
	return f.byTrip[id], nil
}
func (f *fakeBookingRepo) DeleteByTrip(tripID string) (int64, error) {
	n := int64(len(f.byTrip[tripID]))
	delete(f.byTrip, tripID)
	return n, nil
}

// fakeInvitationRepo tracks only what the cascade delete needs.
type fakeInvitationRepo struct {
	byTrip map[string][]models.TripInvitation
}

func (f *fakeInvitationRepo) Create(inv *models.TripInvitation) error {
	f.byTrip[inv.TripID] = append(f.byTrip[inv.TripID], *inv)
	return nil
}
func (f *fakeInvitationRepo) GetByToken(token string) (*models.TripInvitation, error) {
	return nil, nil
}
func (f *fakeInvitationRepo) ListByInviteeEmail(email, status string) ([]models.TripInvitation, error) {
	return nil, nil
}
func (f *fakeInvitationRepo) ListByInviter(inviterID, status string) ([]models.TripInvitation, error) {
	return nil, nil
}
func (f *fakeInvitationRepo) HasPending(tripID, inviteeEmail string) (bool, error) {
	return false, nil
}
func (f *fakeInvitationRepo) UpdateStatus(id, status string) error { return nil }
func (f *fakeInvitationRepo) AcceptWithCollaborator(invitationID, tripID string, collab models.Collaborator) error {
	return nil
}
func (f *fakeInvitationRepo) DeleteByTrip(tripID string) (int64, error) {
	n := int64(len(f.byTrip[tripID]))
	delete(f.byTrip, tripID)
	return n, nil
}

// fakeUserRepo records stat increments.
type fakeUserRepo struct {
	stats map[string]int
}

func (f *fakeUserRepo) Create(u *models.User) error { return nil }
func (f *fakeUserRepo) Update(u *models.User) error { return nil }
func (f *fakeUserRepo) UpdateFields(id string, fields bson.M) error { return nil }
func (f *fakeUserRepo) Delete(id string) error { return nil }
func (f *fakeUserRepo) GetByID(id string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByIDWithProjection(id string, p bson.M) (*models.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByEmailWithProjection(email string, p bson.M) (*models.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) GetByPhone(phone string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) AddFriend(userID string, fr models.Friend) error { return nil }
func (f *fakeUserRepo) RemoveFriend(userID, friendUserID string) error { return nil }
func (f *fakeUserRepo) IncrementStat(id, field string, delta int) error {
	if f.stats == nil {
		f.stats = make(map[string]int)
	}
	f.stats[id+"/"+field] += delta
	return nil
}

type fakeTemplateRepo struct {
	templates map[string]*models.TripTemplate
}

func (f *fakeTemplateRepo) GetByID(id string) (*models.TripTemplate, error) {
	t, ok := f.templates[id]
	if !ok {
		return nil, nil
	}
	return t, nil
}
func (f *fakeTemplateRepo) GetAll() ([]models.TripTemplate, error) {
	var out []models.TripTemplate
	for _, t := range f.templates {
		out = append(out, *t)
	}
	return out, nil
}

func newTripService() (*DefaultTripService, *fakeTripRepo, *fakeBookingRepo, *fakeInvitationRepo) {
	trips := newFakeTripRepo()
	bookings := &fakeBookingRepo{byTrip: make(map[string][]models.Booking)}
	invitations := &fakeInvitationRepo{byTrip: make(map[string][]models.TripInvitation)}
	svc := &DefaultTripService{
		Repo:           trips,
		BookingRepo:    bookings,
		InvitationRepo: invitations,
		TemplateRepo:   &fakeTemplateRepo{templates: map[string]*models.TripTemplate{}},
		UserRepo:       &fakeUserRepo{},
	}
	return svc, trips, bookings, invitations
}

func validCreateRequest() CreateTripRequest {
	return CreateTripRequest{
		Title:       "Paris Adventure",
		Destination: "Paris",
		StartDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateTripRejectsBadDateRange(t *testing.T) {
	svc, _, _, _ := newTripService()

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"start after end", time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC), time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
		{"start equals end", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			req.StartDate = tc.start
			req.EndDate = tc.end

			_, err := svc.CreateTrip("owner-1", req)
			var ve ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}
}

func TestCreateTripDefaults(t *testing.T) {
	svc, trips, _, _ := newTripService()

	created, err := svc.CreateTrip("owner-1", validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "Paris Adventure", created.Title)
	assert.Equal(t, "owner-1", created.OwnerID)
	assert.Equal(t, models.TripVisibilityPrivate, created.Visibility)
	assert.Equal(t, models.TripStatusValidated, created.Status)
	assert.NotNil(t, created.Collaborators)
	assert.Empty(t, created.Collaborators)
	assert.Zero(t, created.Stats.TotalBookings)
	assert.Zero(t, created.Stats.EstimatedCost)

	stored, err := trips.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestCreateTripRejectsMissingFields(t *testing.T) {
	svc, _, _, _ := newTripService()

	req := validCreateRequest()
	req.Title = ""
	_, err := svc.CreateTrip("owner-1", req)
	var ve ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestUpdateTripVisibilityIsOwnerOnly(t *testing.T) {
	svc, trips, _, _ := newTripService()

	created, err := svc.CreateTrip("owner-1", validCreateRequest())
	require.NoError(t, err)

	// Give an editor full edit rights but no ownership.
	stored := trips.trips[created.ID]
	stored.Collaborators = append(stored.Collaborators, models.Collaborator{
		UserID:      "editor-1",
		Role:        models.RoleEditor,
		Permissions: models.CollaboratorPermissions{CanEdit: true},
	})

	public := models.TripVisibilityPublic
	_, err = svc.UpdateTrip(created.ID, "editor-1", UpdateTripRequest{Visibility: &public})
	assert.ErrorIs(t, err, ErrNotAuthorized)

	updated, err := svc.UpdateTrip(created.ID, "owner-1", UpdateTripRequest{Visibility: &public})
	require.NoError(t, err)
	assert.Equal(t, models.TripVisibilityPublic, updated.Visibility)
}

func TestUpdateTripRevalidatesDates(t *testing.T) {
	svc, _, _, _ := newTripService()

	created, err := svc.CreateTrip("owner-1", validCreateRequest())
	require.NoError(t, err)

	// Pushing the start date past the stored end date must fail.
	badStart := created.EndDate.AddDate(0, 0, 1)
	_, err = svc.UpdateTrip(created.ID, "owner-1", UpdateTripRequest{StartDate: &badStart})
	var ve ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestDeleteTripCascades(t *testing.T) {
	svc, trips, bookings, invitations := newTripService()

	created, err := svc.CreateTrip("owner-1", validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, bookings.Create(&models.Booking{ID: "b1", TripID: created.ID}))
	require.NoError(t, bookings.Create(&models.Booking{ID: "b2", TripID: created.ID}))
	require.NoError(t, invitations.Create(&models.TripInvitation{ID: "i1", TripID: created.ID}))

	err = svc.DeleteTrip(created.ID, "owner-1")
	require.NoError(t, err)

	stored, _ := trips.GetByID(created.ID)
	assert.Nil(t, stored)
	assert.Empty(t, bookings.byTrip[created.ID])
	assert.Empty(t, invitations.byTrip[created.ID])
}

func TestDeleteTripNonOwnerRejected(t *testing.T) {
	svc, trips, bookings, _ := newTripService()

	created, err := svc.CreateTrip("owner-1", validCreateRequest())
	require.NoError(t, err)
	require.NoError(t, bookings.Create(&models.Booking{ID: "b1", TripID: created.ID}))

	// A collaborator with every permission still may not delete.
	stored := trips.trips[created.ID]
	stored.Collaborators = append(stored.Collaborators, models.Collaborator{
		UserID:      "editor-1",
		Role:        models.RoleEditor,
		Permissions: models.CollaboratorPermissions{CanEdit: true, CanAddBookings: true, CanInvite: true},
	})

	err = svc.DeleteTrip(created.ID, "editor-1")
	assert.ErrorIs(t, err, ErrNotAuthorized)

	remaining, _ := trips.GetByID(created.ID)
	assert.NotNil(t, remaining)
	assert.Len(t, bookings.byTrip[created.ID], 1)
}

func TestCreateFromTemplate(t *testing.T) {
	svc, _, _, _ := newTripService()
	svc.TemplateRepo = &fakeTemplateRepo{templates: map[string]*models.TripTemplate{
		"tpl-1": {
			ID:           "tpl-1",
			Name:         "Weekend in Rome",
			Destination:  "Rome",
			DurationDays: 3,
			Tags:         []string{"city"},
		},
	}}

	start := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)
	created, err := svc.CreateFromTemplate("owner-1", "tpl-1", start)
	require.NoError(t, err)

	assert.Equal(t, "Weekend in Rome", created.Title)
	assert.Equal(t, models.TripStatusDraft, created.Status)
	assert.Equal(t, models.TripVisibilityPrivate, created.Visibility)
	assert.Equal(t, start.AddDate(0, 0, 3), created.EndDate)

	_, err = svc.CreateFromTemplate("owner-1", "missing", start)
	var ve ValidationError
	require.ErrorAs(t, err, &ve)
}
