package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roamly/config"
	"roamly/database"
	addressRepoPkg "roamly/database/repository/address"
	bookingRepoPkg "roamly/database/repository/booking"
	friendRepoPkg "roamly/database/repository/friend"
	invitationRepoPkg "roamly/database/repository/invitation"
	notificationRepoPkg "roamly/database/repository/notification"
	templateRepoPkg "roamly/database/repository/template"
	tripRepoPkg "roamly/database/repository/trip"
	userRepoPkg "roamly/database/repository/user"
	"roamly/handlers"
	"roamly/routes"
	"roamly/services/address"
	"roamly/services/booking"
	"roamly/services/friend"
	"roamly/services/invitation"
	"roamly/services/notification"
	"roamly/services/trip"
	"roamly/services/user"
	"roamly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Attachment storage is optional; the server runs without it.
	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: attachment storage disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	tripRepo := tripRepoPkg.NewMongoTripRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	addressRepo := addressRepoPkg.NewMongoAddressRepo()
	invitationRepo := invitationRepoPkg.NewMongoInvitationRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	friendRepo := friendRepoPkg.NewMongoFriendRequestRepo()
	templateRepo := templateRepoPkg.NewMongoTemplateRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Repo:     notificationRepo,
		UserRepo: userRepo,
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	tripService := &trip.DefaultTripService{
		Repo:           tripRepo,
		BookingRepo:    bookingRepo,
		InvitationRepo: invitationRepo,
		TemplateRepo:   templateRepo,
		UserRepo:       userRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		TripRepo: tripRepo,
	}
	addressService := &address.DefaultAddressService{
		Repo: addressRepo,
	}
	invitationService := &invitation.DefaultInvitationService{
		Repo:     invitationRepo,
		TripRepo: tripRepo,
		UserRepo: userRepo,
		Notifier: notificationService,
	}
	friendService := &friend.DefaultFriendService{
		Repo:     friendRepo,
		UserRepo: userRepo,
		Notifier: notificationService,
	}

	handlers.UserService = userService
	handlers.TripService = tripService
	handlers.BookingService = bookingService
	handlers.AddressService = addressService
	handlers.InvitationService = invitationService
	handlers.FriendService = friendService
	handlers.NotificationService = notificationService
	handlers.Storage = storageService

	handlerBundle := handlers.NewHandlerBundle(userRepo)

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Starting server on %s...", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Sugar().Info("Server stopped")
}
