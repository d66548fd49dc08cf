package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roamly/models"
	invitationSvc "roamly/services/invitation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubInvitationService struct {
	respondErr error
	createErr  error
}

func (s *stubInvitationService) CreateInvitation(inviterID string, req invitationSvc.CreateInvitationRequest) (*models.TripInvitation, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.TripInvitation{ID: "inv-1", Status: models.InvitationStatusPending}, nil
}
func (s *stubInvitationService) Respond(token, action, responderID string) (*models.TripInvitation, error) {
	if s.respondErr != nil {
		return nil, s.respondErr
	}
	return &models.TripInvitation{ID: "inv-1", Status: models.InvitationStatusAccepted}, nil
}
func (s *stubInvitationService) ListForInvitee(email, status string) ([]models.TripInvitation, error) {
	return nil, nil
}
func (s *stubInvitationService) ListForInviter(inviterID, status string) ([]models.TripInvitation, error) {
	return nil, nil
}

func newInvitationRouter(svc invitationSvc.InvitationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	InvitationService = svc
	r := gin.New()
	r.PUT("/api/invitations/:token", RespondInvitationHandler)
	r.POST("/api/invitations", asUser("owner-1"), CreateInvitationHandler)
	return r
}

func putInvitation(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/invitations/tok-1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRespondInvitationHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, http.StatusOK},
		{"unknown token maps to 404", invitationSvc.ErrInvitationNotFound, http.StatusNotFound},
		{"non-actionable maps to 409", invitationSvc.ErrNotActionable, http.StatusConflict},
		{"wrong invitee maps to 403", invitationSvc.ErrWrongInvitee, http.StatusForbidden},
		{"anonymous accept maps to 403", invitationSvc.ErrNotAuthorized, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newInvitationRouter(&stubInvitationService{respondErr: tc.err})
			w := putInvitation(r, `{"action":"accept"}`)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRespondInvitationHandlerRequiresAction(t *testing.T) {
	r := newInvitationRouter(&stubInvitationService{})
	w := putInvitation(r, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateInvitationHandlerMapsDuplicateTo409(t *testing.T) {
	r := newInvitationRouter(&stubInvitationService{createErr: invitationSvc.ErrDuplicatePending})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/invitations",
		strings.NewReader(`{"tripId":"trip-1","inviteeEmail":"ada@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
