package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorhive/config"
	"tutorhive/cron"
	"tutorhive/handlers"
	"tutorhive/middleware"
	"tutorhive/routes"
	"tutorhive/services/remote"
	"tutorhive/services/schedule"
	"tutorhive/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	draftTTL := time.Duration(config.AppConfig.DraftTTLMinutes) * time.Minute
	draftStore := schedule.NewRedisDraftStore(utils.GetDraftClient(), draftTTL)

	availabilityClient := remote.NewHTTPAvailabilityClient(
		config.AppConfig.BackendBaseURL,
		&http.Client{Timeout: config.AppConfig.BackendTimeout},
	)

	expiryScheduler := cron.NewAsynqExpiryScheduler()
	cron.InitDraftJanitor(draftStore)

	scheduleService := &schedule.DefaultScheduleService{
		Remote:   availabilityClient,
		Drafts:   draftStore,
		Expiry:   expiryScheduler,
		DraftTTL: draftTTL,
		Logger:   logger,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(scheduleService)
	routes.RegisterRoutes(router, availabilityHandler)

	utils.StartHealthMonitor(utils.GetDraftClient(), config.AppConfig.BackendBaseURL)

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
