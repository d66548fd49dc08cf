package invitation

import (
	"fmt"
	"strings"
	"time"

	"roamly/config"
	"roamly/models"
	tripSvc "roamly/services/trip"
	"roamly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateInvitation issues a pending invitation for a trip.
func (s *DefaultInvitationService) CreateInvitation(inviterID string, req CreateInvitationRequest) (*models.TripInvitation, error) {
	email := strings.ToLower(strings.TrimSpace(req.InviteeEmail))
	if email == "" {
		return nil, ValidationError{Msg: "invitee email is required"}
	}

	role := req.Role
	if role == "" {
		role = models.RoleEditor
	}
	if role != models.RoleEditor && role != models.RoleViewer {
		return nil, ValidationError{Msg: "role must be editor or viewer"}
	}

	t, err := s.TripRepo.GetByID(req.TripID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, tripSvc.ErrTripNotFound
	}
	if !tripSvc.CanInvite(t, inviterID) {
		return nil, ErrNotAuthorized
	}

	// An existing collaborator needs no invitation.
	if invitee, err := s.UserRepo.GetByEmail(email); err == nil && invitee != nil {
		if t.CollaboratorFor(invitee.ID) != nil || invitee.ID == t.OwnerID {
			return nil, ValidationError{Msg: "user is already a collaborator on this trip"}
		}
	}

	pending, err := s.Repo.HasPending(req.TripID, email)
	if err != nil {
		utils.GetLogger().Error("CreateInvitation: pending check failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create invitation")
	}
	if pending {
		return nil, ErrDuplicatePending
	}

	ttlDays := config.AppConfig.InvitationTTLDays
	if ttlDays <= 0 {
		ttlDays = 7
	}

	inv := models.TripInvitation{
		ID:           uuid.NewString(),
		TripID:       req.TripID,
		InviterID:    inviterID,
		InviteeEmail: email,
		Token:        uuid.NewString(),
		Role:         role,
		Permissions:  req.Permissions,
		Status:       models.InvitationStatusPending,
		ExpiresAt:    time.Now().AddDate(0, 0, ttlDays),
	}
	if err := s.Repo.Create(&inv); err != nil {
		utils.GetLogger().Error("CreateInvitation: persist failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create invitation")
	}

	s.Notifier.InvitationReceived(&inv, t)
	return &inv, nil
}

// Respond transitions a pending invitation looked up by token.
func (s *DefaultInvitationService) Respond(token, action, responderID string) (*models.TripInvitation, error) {
	if action != "accept" && action != "decline" {
		return nil, ValidationError{Msg: "action must be accept or decline"}
	}

	inv, err := s.Repo.GetByToken(token)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, ErrInvitationNotFound
	}

	now := time.Now()
	if inv.Status == models.InvitationStatusPending && inv.Expired(now) {
		// Lazy expiry: persist the terminal state the TTL index will
		// eventually reap anyway.
		if err := s.Repo.UpdateStatus(inv.ID, models.InvitationStatusExpired); err != nil {
			utils.GetLogger().Warn("Respond: failed to persist expiry", zap.String("id", inv.ID), zap.Error(err))
		}
		inv.Status = models.InvitationStatusExpired
	}
	if !inv.Actionable(now) {
		return nil, ErrNotActionable
	}

	if action == "decline" {
		if err := s.Repo.UpdateStatus(inv.ID, models.InvitationStatusDeclined); err != nil {
			utils.GetLogger().Error("Respond: decline failed", zap.String("id", inv.ID), zap.Error(err))
			return nil, fmt.Errorf("failed to decline invitation")
		}
		inv.Status = models.InvitationStatusDeclined
		s.Notifier.InvitationDeclined(inv)
		return inv, nil
	}

	// Accepting requires an authenticated responder whose email matches the
	// invitation.
	responder, err := s.UserRepo.GetByID(responderID)
	if err != nil || responder == nil {
		return nil, ErrNotAuthorized
	}
	if !strings.EqualFold(responder.Email, inv.InviteeEmail) {
		return nil, ErrWrongInvitee
	}

	collab := models.Collaborator{
		UserID:      responder.ID,
		Role:        inv.Role,
		JoinedAt:    now,
		Permissions: inv.Permissions,
	}
	if err := s.Repo.AcceptWithCollaborator(inv.ID, inv.TripID, collab); err != nil {
		utils.GetLogger().Error("Respond: accept transaction failed", zap.String("id", inv.ID), zap.Error(err))
		return nil, ErrNotActionable
	}
	inv.Status = models.InvitationStatusAccepted

	if err := s.UserRepo.IncrementStat(responder.ID, "tripsJoined", 1); err != nil {
		utils.GetLogger().Warn("Respond: stats update failed", zap.String("userId", responder.ID), zap.Error(err))
	}
	s.Notifier.InvitationAccepted(inv, responder)
	return inv, nil
}

// ListForInvitee returns invitations addressed to the email.
func (s *DefaultInvitationService) ListForInvitee(email, status string) ([]models.TripInvitation, error) {
	invs, err := s.Repo.ListByInviteeEmail(strings.ToLower(strings.TrimSpace(email)), status)
	if err != nil {
		return nil, err
	}
	return s.applyLazyExpiry(invs), nil
}

// ListForInviter returns invitations sent by the user.
func (s *DefaultInvitationService) ListForInviter(inviterID, status string) ([]models.TripInvitation, error) {
	invs, err := s.Repo.ListByInviter(inviterID, status)
	if err != nil {
		return nil, err
	}
	return s.applyLazyExpiry(invs), nil
}

// applyLazyExpiry reports pending-but-expired invitations as expired and
// persists the transition. There is no background sweeper; expiry is only
// ever observed on read.
func (s *DefaultInvitationService) applyLazyExpiry(invs []models.TripInvitation) []models.TripInvitation {
	now := time.Now()
	for i := range invs {
		if invs[i].Status == models.InvitationStatusPending && invs[i].Expired(now) {
			if err := s.Repo.UpdateStatus(invs[i].ID, models.InvitationStatusExpired); err != nil {
				utils.GetLogger().Warn("lazy expiry persist failed", zap.String("id", invs[i].ID), zap.Error(err))
			}
			invs[i].Status = models.InvitationStatusExpired
		}
	}
	return invs
}
