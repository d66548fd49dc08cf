package handlers

import (
	userRepoPkg "roamly/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration stays in one place.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	VerifyOTPHandler        gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc
	ChangePasswordHandler   gin.HandlerFunc
	RevokeUserTokenHandler  gin.HandlerFunc
	DeleteUserHandler       gin.HandlerFunc

	// Trip endpoints
	CreateTripHandler       gin.HandlerFunc
	GetTripHandler          gin.HandlerFunc
	ListTripsHandler        gin.HandlerFunc
	UpdateTripHandler       gin.HandlerFunc
	DeleteTripHandler       gin.HandlerFunc
	SearchTripsHandler      gin.HandlerFunc
	NearbyTripsHandler      gin.HandlerFunc
	ListTemplatesHandler    gin.HandlerFunc
	TripFromTemplateHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler      gin.HandlerFunc
	ListBookingsByTripHandler gin.HandlerFunc
	UpdateBookingHandler      gin.HandlerFunc
	DeleteBookingHandler      gin.HandlerFunc

	// Address endpoints
	CreateAddressHandler       gin.HandlerFunc
	ListAddressesHandler       gin.HandlerFunc
	ListAddressesByTripHandler gin.HandlerFunc
	UpdateAddressHandler       gin.HandlerFunc
	DeleteAddressHandler       gin.HandlerFunc
	NearbyAddressesHandler     gin.HandlerFunc

	// Invitation endpoints
	CreateInvitationHandler    gin.HandlerFunc
	RespondInvitationHandler   gin.HandlerFunc
	ListInviteeInvitesHandler  gin.HandlerFunc
	ListSentInvitationsHandler gin.HandlerFunc

	// Friend endpoints
	SendFriendRequestHandler    gin.HandlerFunc
	ListFriendRequestsHandler   gin.HandlerFunc
	RespondFriendRequestHandler gin.HandlerFunc
	ListFriendsHandler          gin.HandlerFunc
	RemoveFriendHandler         gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler    gin.HandlerFunc
	MarkNotificationReadHandler gin.HandlerFunc
	MarkAllReadHandler          gin.HandlerFunc

	// Storage endpoints
	UploadAttachmentHandler gin.HandlerFunc
	AttachmentURLHandler    gin.HandlerFunc
}

// NewHandlerBundle wires every handler func. Services must be assigned to the
// package-level vars before this is called.
func NewHandlerBundle(userRepo userRepoPkg.UserRepository) *HandlerBundle {
	return &HandlerBundle{
		UserRepo: userRepo,

		RegisterUserHandler:     RegisterUserHandler,
		VerifyOTPHandler:        VerifyOTPHandler,
		AuthenticateUserHandler: AuthenticateUserHandler,
		GetProfileHandler:       GetProfileHandler,
		UpdateProfileHandler:    UpdateProfileHandler,
		ChangePasswordHandler:   ChangePasswordHandler,
		RevokeUserTokenHandler:  RevokeUserTokenHandler,
		DeleteUserHandler:       DeleteUserHandler,

		CreateTripHandler:       CreateTripHandler,
		GetTripHandler:          GetTripHandler,
		ListTripsHandler:        ListTripsHandler,
		UpdateTripHandler:       UpdateTripHandler,
		DeleteTripHandler:       DeleteTripHandler,
		SearchTripsHandler:      SearchTripsHandler,
		NearbyTripsHandler:      NearbyTripsHandler,
		ListTemplatesHandler:    ListTemplatesHandler,
		TripFromTemplateHandler: TripFromTemplateHandler,

		CreateBookingHandler:      CreateBookingHandler,
		ListBookingsByTripHandler: ListBookingsByTripHandler,
		UpdateBookingHandler:      UpdateBookingHandler,
		DeleteBookingHandler:      DeleteBookingHandler,

		CreateAddressHandler:       CreateAddressHandler,
		ListAddressesHandler:       ListAddressesHandler,
		ListAddressesByTripHandler: ListAddressesByTripHandler,
		UpdateAddressHandler:       UpdateAddressHandler,
		DeleteAddressHandler:       DeleteAddressHandler,
		NearbyAddressesHandler:     NearbyAddressesHandler,

		CreateInvitationHandler:    CreateInvitationHandler,
		RespondInvitationHandler:   RespondInvitationHandler,
		ListInviteeInvitesHandler:  ListInviteeInvitesHandler,
		ListSentInvitationsHandler: ListSentInvitationsHandler,

		SendFriendRequestHandler:    SendFriendRequestHandler,
		ListFriendRequestsHandler:   ListFriendRequestsHandler,
		RespondFriendRequestHandler: RespondFriendRequestHandler,
		ListFriendsHandler:          ListFriendsHandler,
		RemoveFriendHandler:         RemoveFriendHandler,

		ListNotificationsHandler:    ListNotificationsHandler,
		MarkNotificationReadHandler: MarkNotificationReadHandler,
		MarkAllReadHandler:          MarkAllReadHandler,

		UploadAttachmentHandler: UploadAttachmentHandler,
		AttachmentURLHandler:    AttachmentURLHandler,
	}
}
