package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayhub/config"
	"stayhub/cron"
	"stayhub/database"
	bookingsRepo "stayhub/database/repository/bookings"
	"stayhub/gds"
	"stayhub/handlers"
	"stayhub/middleware"
	"stayhub/routes"
	"stayhub/services/booking"
	"stayhub/services/geo"
	"stayhub/services/notification"
	"stayhub/services/search"
	"stayhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	gdsClient := gds.NewClient(
		config.AppConfig.GDSBaseURL,
		config.AppConfig.GDSUsername,
		config.AppConfig.GDSPassword,
		logger,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	recordsRepo := bookingsRepo.NewMongoBookingRecordRepo()

	// services.
	geoResolver := &geo.DefaultResolver{
		GDS:    gdsClient,
		Logger: logger,
	}
	searchService := &search.DefaultSearchService{
		GDS:    gdsClient,
		Geo:    geoResolver,
		Logger: logger,
	}
	sessionService := &booking.DefaultSessionService{
		Cache: utils.GetSessionCacheClient(),
	}
	codeResolver := &booking.DefaultCodeResolver{
		GDS:    gdsClient,
		Logger: logger,
	}
	prebookCoordinator := &booking.DefaultPrebookCoordinator{
		GDS:    gdsClient,
		Logger: logger,
	}

	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisEmailQueueDB,
	})
	defer queueClient.Close()
	notifier := notification.NewDefaultConfirmationNotifier(queueClient, logger)

	finalizer := &booking.DefaultFinalizer{
		GDS:      gdsClient,
		Records:  recordsRepo,
		Sessions: sessionService,
		Notifier: notifier,
		Logger:   logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Search:   handlers.NewSearchHandler(searchService, sessionService, logger),
		Booking:  handlers.NewBookingHandler(sessionService, codeResolver, prebookCoordinator, finalizer, logger),
		Records:  handlers.NewRecordsHandler(recordsRepo, gdsClient, logger),
		Hotels:   handlers.NewHotelsHandler(gdsClient, logger),
		Customer: handlers.NewCustomerHandler(gdsClient, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker draining the confirmation-email queue.
	go cron.InitConfirmationWorker(gdsClient)

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
