package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/cron"
	"doctorsportal/database"
	bookingRepoPkg "doctorsportal/database/repository/booking"
	catalogRepoPkg "doctorsportal/database/repository/catalog"
	doctorRepoPkg "doctorsportal/database/repository/doctor"
	paymentRepoPkg "doctorsportal/database/repository/payment"
	userRepoPkg "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/booking"
	"doctorsportal/services/notification"
	"doctorsportal/services/payment"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, db, err := database.Connect(context.Background())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Disconnect(context.Background(), client); err != nil {
			logger.Sugar().Errorf("main: failed to disconnect from MongoDB: %v", err)
		}
	}()

	availabilityCache := booking.NewRedisCache(utils.GetCacheClient())
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo(db)
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo(db)

	// Notification queue: the admission controller enqueues, the background
	// worker drains into Mailgun.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	mailer := notification.NewMailgunMailer(
		config.AppConfig.MailgunDomain,
		config.AppConfig.MailgunAPIKey,
		config.AppConfig.MailgunSender,
	)
	cron.InitEmailWorker(mailer)

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	availabilityService := &booking.DefaultAvailabilityService{
		Catalog:  catalogRepo,
		Bookings: bookingRepo,
		Cache:    availabilityCache,
	}
	admissionService := &booking.DefaultAdmissionService{
		Bookings: bookingRepo,
		Notifier: notification.NewQueueNotifier(asynqClient),
		Cache:    availabilityCache,
	}
	paymentService := &payment.DefaultPaymentService{
		Payments: paymentRepo,
		Bookings: bookingRepo,
	}

	// handlers.
	appointmentHandler := handlers.NewAppointmentHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(admissionService, bookingRepo)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	userHandler := handlers.NewUserHandler(userService)
	doctorHandler := handlers.NewDoctorHandler(doctorRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserService: userService,

		GetAppointmentOptionsHandler: appointmentHandler.GetAppointmentOptions,
		GetSpecialitiesHandler:       appointmentHandler.GetSpecialities,

		GetBookingsHandler:    bookingHandler.GetBookings,
		GetBookingByIDHandler: bookingHandler.GetBookingByID,
		CreateBookingHandler:  bookingHandler.CreateBooking,

		CreatePaymentIntentHandler: paymentHandler.CreatePaymentIntent,
		RecordPaymentHandler:       paymentHandler.RecordPayment,

		IssueJWTHandler:     userHandler.IssueJWT,
		GetUsersHandler:     userHandler.GetUsers,
		CreateUserHandler:   userHandler.CreateUser,
		CheckAdminHandler:   userHandler.CheckAdmin,
		PromoteAdminHandler: userHandler.PromoteAdmin,

		CreateDoctorHandler: doctorHandler.CreateDoctor,
		GetDoctorsHandler:   doctorHandler.GetDoctors,
		DeleteDoctorHandler: doctorHandler.DeleteDoctor,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
