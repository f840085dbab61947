package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"medibook/config"
	"medibook/cron"
	"medibook/database"
	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/availability"
	"medibook/services/booking"
	"medibook/services/doctor"
	"medibook/services/notification"
	"medibook/services/schedule"
	"medibook/services/tasks"
	"medibook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSlotCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	docRepo := doctorRepo.NewMongoDoctorRepo()
	if err := apptRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}
	if err := docRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure doctor indexes: %v", err)
	}

	// services.
	notificationService := notification.NewLogNotificationService()
	reminderScheduler := tasks.NewReminderScheduler()
	defer reminderScheduler.Close()

	availabilityService := &availability.Service{
		DoctorRepo: docRepo,
		Cache:      utils.GetSlotCacheClient(),
	}

	bookingEngine := &booking.DefaultBookingEngine{
		Repo:                apptRepo,
		DoctorRepo:          docRepo,
		Notification:        notificationService,
		Reminders:           reminderScheduler,
		ReminderLeadMinutes: config.AppConfig.ReminderLeadMinutes,
	}

	doctorService := &doctor.DefaultDoctorService{
		Repo:         docRepo,
		SlotCache:    availabilityService,
		Notification: notificationService,
	}

	scheduleService := &schedule.Service{Repo: apptRepo}

	bookingHandler := handlers.NewBookingHandler(bookingEngine, logger)
	doctorHandler := handlers.NewDoctorHandler(
		doctorService,
		availabilityService,
		bookingEngine,
		scheduleService,
		logger,
	)

	routes.RegisterRoutes(router, bookingHandler, doctorHandler)

	// Start the reminder worker alongside the API server.
	go cron.InitReminderWorker(notificationService)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSlotCacheClient()},
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
