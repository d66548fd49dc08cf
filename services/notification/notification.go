package notification

import (
	"fmt"
	"time"

	notificationRepo "roamly/database/repository/notification"
	userRepo "roamly/database/repository/user"
	"roamly/models"
	"roamly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService persists per-user notifications for in-app display.
// Push delivery is out of scope; documents expire through the TTL index.
type NotificationService interface {
	InvitationReceived(inv *models.TripInvitation, trip *models.Trip)
	InvitationAccepted(inv *models.TripInvitation, responder *models.User)
	InvitationDeclined(inv *models.TripInvitation)
	FriendRequestReceived(req *models.FriendRequest, sender *models.User)
	FriendRequestAccepted(req *models.FriendRequest, recipient *models.User)

	List(userID string, unreadOnly bool) ([]models.Notification, error)
	MarkRead(id, userID string) error
	MarkAllRead(userID string) error
}

// DefaultNotificationService is the production implementation backed by
// MongoDB.
type DefaultNotificationService struct {
	Repo     notificationRepo.NotificationRepository
	UserRepo userRepo.UserRepository
}

// notificationTTL bounds how long an unread notification lingers before the
// TTL index reaps it.
const notificationTTL = 90 * 24 * time.Hour

func (s *DefaultNotificationService) store(userID, kind, title, body string, data map[string]string) {
	expire := time.Now().Add(notificationTTL)
	n := models.Notification{
		ID:       uuid.NewString(),
		UserID:   userID,
		Type:     kind,
		Title:    title,
		Body:     body,
		Data:     data,
		ExpireAt: &expire,
	}
	if err := s.Repo.Create(&n); err != nil {
		utils.GetLogger().Warn("notification persist failed",
			zap.String("userId", userID), zap.String("type", kind), zap.Error(err))
	}
}

// InvitationReceived notifies the invitee, if they hold an account.
func (s *DefaultNotificationService) InvitationReceived(inv *models.TripInvitation, trip *models.Trip) {
	invitee, err := s.UserRepo.GetByEmail(inv.InviteeEmail)
	if err != nil || invitee == nil {
		return
	}
	s.store(invitee.ID, models.NotificationInvitationReceived,
		"Trip invitation",
		fmt.Sprintf("You have been invited to join %q", trip.Title),
		map[string]string{"tripId": inv.TripID, "token": inv.Token})
}

// InvitationAccepted notifies the inviter.
func (s *DefaultNotificationService) InvitationAccepted(inv *models.TripInvitation, responder *models.User) {
	s.store(inv.InviterID, models.NotificationInvitationAccepted,
		"Invitation accepted",
		fmt.Sprintf("%s joined your trip", responder.Username),
		map[string]string{"tripId": inv.TripID, "userId": responder.ID})
}

// InvitationDeclined notifies the inviter.
func (s *DefaultNotificationService) InvitationDeclined(inv *models.TripInvitation) {
	s.store(inv.InviterID, models.NotificationInvitationDeclined,
		"Invitation declined",
		fmt.Sprintf("%s declined your trip invitation", inv.InviteeEmail),
		map[string]string{"tripId": inv.TripID})
}

// FriendRequestReceived notifies the recipient, if resolved to an account.
func (s *DefaultNotificationService) FriendRequestReceived(req *models.FriendRequest, sender *models.User) {
	if req.RecipientID == "" {
		return
	}
	s.store(req.RecipientID, models.NotificationFriendRequest,
		"Friend request",
		fmt.Sprintf("%s wants to add you as a friend", sender.Username),
		map[string]string{"requestId": req.ID, "userId": sender.ID})
}

// FriendRequestAccepted notifies the original sender.
func (s *DefaultNotificationService) FriendRequestAccepted(req *models.FriendRequest, recipient *models.User) {
	s.store(req.SenderID, models.NotificationFriendAccepted,
		"Friend request accepted",
		fmt.Sprintf("%s accepted your friend request", recipient.Username),
		map[string]string{"userId": recipient.ID})
}

// List returns the user's notifications.
func (s *DefaultNotificationService) List(userID string, unreadOnly bool) ([]models.Notification, error) {
	return s.Repo.ListByUser(userID, unreadOnly)
}

// MarkRead flags a single notification as read.
func (s *DefaultNotificationService) MarkRead(id, userID string) error {
	return s.Repo.MarkRead(id, userID)
}

// MarkAllRead flags all of the user's notifications as read.
func (s *DefaultNotificationService) MarkAllRead(userID string) error {
	return s.Repo.MarkAllRead(userID)
}
