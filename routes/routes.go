package routes

import (
	"time"

	"roamly/handlers"
	"roamly/middleware"
	"roamly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/verify-otp", hb.VerifyOTPHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.PUT("/change-password", hb.ChangePasswordHandler)
		api.DELETE("/revoke", hb.RevokeUserTokenHandler)
		api.DELETE("/me", hb.DeleteUserHandler)
	}
}

// RegisterTripRoutes registers trip and template endpoints.
func RegisterTripRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/trips")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.ListTripsHandler)
		api.POST("", hb.CreateTripHandler)
		api.GET("/search", hb.SearchTripsHandler)
		api.GET("/nearby", hb.NearbyTripsHandler)
		api.POST("/from-template/:templateId", hb.TripFromTemplateHandler)
		api.GET("/:id", hb.GetTripHandler)
		api.PUT("/:id", hb.UpdateTripHandler)
		api.DELETE("/:id", hb.DeleteTripHandler)
	}

	templates := r.Group("/api/trip-templates")
	{
		templates.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		templates.GET("", hb.ListTemplatesHandler)
	}
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.CreateBookingHandler)
		api.GET("/trip/:tripId", hb.ListBookingsByTripHandler)
		api.PUT("/:id", hb.UpdateBookingHandler)
		api.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterAddressRoutes registers address-book endpoints.
func RegisterAddressRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/addresses")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.ListAddressesHandler)
		api.POST("", hb.CreateAddressHandler)
		api.GET("/nearby", hb.NearbyAddressesHandler)
		api.GET("/trip/:tripId", hb.ListAddressesByTripHandler)
		api.PUT("/:id", hb.UpdateAddressHandler)
		api.DELETE("/:id", hb.DeleteAddressHandler)
	}
}

// RegisterInvitationRoutes registers invitation endpoints. Responding by
// token is public so an unregistered invitee can decline; the service
// enforces authentication for accepts.
func RegisterInvitationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invitations")
	{
		api.PUT("/:token", middleware.OptionalJWTAuthMiddleware(hb.UserRepo), hb.RespondInvitationHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		protected.POST("", hb.CreateInvitationHandler)
		protected.GET("/user/:email", hb.ListInviteeInvitesHandler)
		protected.GET("/sent/:userId", hb.ListSentInvitationsHandler)
	}
}

// RegisterFriendRoutes registers friend and friend-request endpoints.
func RegisterFriendRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/friends")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/requests", hb.SendFriendRequestHandler)
		api.GET("/requests", hb.ListFriendRequestsHandler)
		api.PUT("/requests/:id", hb.RespondFriendRequestHandler)
		api.GET("", hb.ListFriendsHandler)
		api.DELETE("/:userId", hb.RemoveFriendHandler)
	}
}

// RegisterNotificationRoutes registers in-app notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.ListNotificationsHandler)
		api.PUT("/:id/read", hb.MarkNotificationReadHandler)
		api.PUT("/read-all", hb.MarkAllReadHandler)
	}
}

// RegisterStorageRoutes registers booking attachment endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/bookings/upload", hb.UploadAttachmentHandler)
		api.GET("/bookings/url/:publicId", hb.AttachmentURLHandler)
	}
}

// RegisterHealthRoutes registers the health and reachability probes.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
	r.GET("/test", handlers.TestHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())
	r.Use(utils.ErrorHandler())

	RegisterHealthRoutes(r)
	RegisterUserRoutes(r, hb)
	RegisterTripRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAddressRoutes(r, hb)
	RegisterInvitationRoutes(r, hb)
	RegisterFriendRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}
