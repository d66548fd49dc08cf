package friend

import (
	"errors"
	"fmt"
	"strings"
	"time"

	friendRepo "roamly/database/repository/friend"
	userRepo "roamly/database/repository/user"
	"roamly/models"
	"roamly/services/notification"
	"roamly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sentinel errors mapped to HTTP statuses in the handlers.
var (
	ErrRequestNotFound  = errors.New("friend request not found")
	ErrNotAuthorized    = errors.New("not authorized for this friend request")
	ErrAlreadyPending   = errors.New("a friend request is already pending between these users")
	ErrAlreadyFriends   = errors.New("users are already friends")
	ErrNotActionable    = errors.New("friend request not actionable")
	ErrUnknownRecipient = errors.New("no account matches that contact")
)

// ValidationError wraps a user-correctable input problem (400).
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

// RequestLists groups incoming and outgoing requests for the requests
// endpoint.
type RequestLists struct {
	Incoming []models.FriendRequest `json:"incoming"`
	Outgoing []models.FriendRequest `json:"outgoing"`
}

// FriendService defines the friend-request lifecycle operations.
type FriendService interface {
	// SendRequest creates a pending request to the contact (an email or a
	// phone number, classified automatically).
	SendRequest(senderID, contact string) (*models.FriendRequest, error)

	// Respond accepts or declines an incoming request. Acceptance writes a
	// symmetric friend entry into both user documents.
	Respond(requestID, userID string, accept bool) (*models.FriendRequest, error)

	ListRequests(userID string) (*RequestLists, error)
	ListFriends(userID string) ([]models.Friend, error)
	RemoveFriend(userID, friendUserID string) error
}

// DefaultFriendService is the production implementation backed by MongoDB.
type DefaultFriendService struct {
	Repo     friendRepo.FriendRequestRepository
	UserRepo userRepo.UserRepository
	Notifier notification.NotificationService
}

// SendRequest creates a pending friend request addressed by email or phone.
func (s *DefaultFriendService) SendRequest(senderID, contact string) (*models.FriendRequest, error) {
	contact = strings.TrimSpace(contact)
	kind, ok := ClassifyContact(contact)
	if !ok {
		return nil, ValidationError{Msg: "contact must be a valid email address or phone number"}
	}

	sender, err := s.UserRepo.GetByID(senderID)
	if err != nil || sender == nil {
		return nil, fmt.Errorf("failed to load sender")
	}

	var recipient *models.User
	if kind == models.ContactKindEmail {
		recipient, err = s.UserRepo.GetByEmail(strings.ToLower(contact))
	} else {
		recipient, err = s.UserRepo.GetByPhone(contact)
	}
	if err != nil {
		utils.GetLogger().Error("SendRequest: recipient lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to send friend request")
	}
	if recipient == nil {
		return nil, ErrUnknownRecipient
	}
	if recipient.ID == senderID {
		return nil, ValidationError{Msg: "cannot send a friend request to yourself"}
	}

	for _, f := range sender.Friends {
		if f.UserID == recipient.ID && f.Status == models.FriendStatusAccepted {
			return nil, ErrAlreadyFriends
		}
	}

	pending, err := s.Repo.HasPendingBetween(senderID, recipient.ID)
	if err != nil {
		utils.GetLogger().Error("SendRequest: pending check failed", zap.Error(err))
		return nil, fmt.Errorf("failed to send friend request")
	}
	if pending {
		return nil, ErrAlreadyPending
	}

	req := models.FriendRequest{
		ID:          uuid.NewString(),
		SenderID:    senderID,
		Contact:     contact,
		ContactKind: kind,
		RecipientID: recipient.ID,
		Status:      models.FriendStatusPending,
	}
	if err := s.Repo.Create(&req); err != nil {
		utils.GetLogger().Error("SendRequest: persist failed", zap.Error(err))
		return nil, fmt.Errorf("failed to send friend request")
	}

	s.Notifier.FriendRequestReceived(&req, sender)
	return &req, nil
}

// Respond accepts or declines an incoming friend request.
func (s *DefaultFriendService) Respond(requestID, userID string, accept bool) (*models.FriendRequest, error) {
	req, err := s.Repo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	if req.RecipientID != userID {
		return nil, ErrNotAuthorized
	}
	if req.Status != models.FriendStatusPending {
		return nil, ErrNotActionable
	}

	if !accept {
		if err := s.Repo.UpdateStatus(req.ID, models.FriendStatusDeclined); err != nil {
			return nil, fmt.Errorf("failed to decline friend request")
		}
		req.Status = models.FriendStatusDeclined
		return req, nil
	}

	now := time.Now()
	if err := s.Repo.UpdateStatus(req.ID, models.FriendStatusAccepted); err != nil {
		return nil, fmt.Errorf("failed to accept friend request")
	}

	// Symmetric friend records, one per direction.
	logger := utils.GetLogger()
	if err := s.UserRepo.AddFriend(req.SenderID, models.Friend{
		UserID: req.RecipientID, Status: models.FriendStatusAccepted, Since: now,
	}); err != nil {
		logger.Error("Respond: failed to embed friend on sender", zap.Error(err))
	}
	if err := s.UserRepo.AddFriend(req.RecipientID, models.Friend{
		UserID: req.SenderID, Status: models.FriendStatusAccepted, Since: now,
	}); err != nil {
		logger.Error("Respond: failed to embed friend on recipient", zap.Error(err))
	}

	req.Status = models.FriendStatusAccepted
	if recipient, err := s.UserRepo.GetByID(req.RecipientID); err == nil && recipient != nil {
		s.Notifier.FriendRequestAccepted(req, recipient)
	}
	return req, nil
}

// ListRequests returns the user's incoming and outgoing requests.
func (s *DefaultFriendService) ListRequests(userID string) (*RequestLists, error) {
	incoming, err := s.Repo.ListByRecipient(userID)
	if err != nil {
		return nil, err
	}
	outgoing, err := s.Repo.ListBySender(userID)
	if err != nil {
		return nil, err
	}
	return &RequestLists{Incoming: incoming, Outgoing: outgoing}, nil
}

// ListFriends returns the user's embedded friend list.
func (s *DefaultFriendService) ListFriends(userID string) ([]models.Friend, error) {
	usr, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user not found")
	}
	return usr.Friends, nil
}

// RemoveFriend drops the friendship from both user documents.
func (s *DefaultFriendService) RemoveFriend(userID, friendUserID string) error {
	if err := s.UserRepo.RemoveFriend(userID, friendUserID); err != nil {
		return err
	}
	return s.UserRepo.RemoveFriend(friendUserID, userID)
}
