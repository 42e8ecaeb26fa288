// File: skillbridge/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillbridge/config"
	"skillbridge/cron"
	"skillbridge/database"
	availabilityRepo "skillbridge/database/repository/availability"
	"skillbridge/handlers"
	"skillbridge/middleware"
	"skillbridge/routes"
	"skillbridge/services/availability"
	"skillbridge/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggerMiddleware())
	router.Use(utils.ErrorHandler())

	limiterStore := middleware.NewRateLimiterStore(config.AppConfig.MaxRequestsPerMin, 10*time.Minute)
	defer limiterStore.Close()
	router.Use(middleware.RateLimitMiddleware(limiterStore))

	// repositories.
	slotRepo := availabilityRepo.NewMongoSlotRepo()

	// services.
	engine := availability.NewOverlapEngine()
	availabilityService := &availability.DefaultAvailabilityService{
		Repo:   slotRepo,
		Engine: engine,
	}
	matchingService := &availability.DefaultMatchingService{
		Repo:        slotRepo,
		Engine:      engine,
		CacheClient: utils.GetCacheClient(),
	}

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, matchingService)

	// Register routes.
	routes.RegisterRoutes(router, availabilityHandler)

	// Background match-digest worker and health monitor.
	cron.InitMatchDigestWorker(matchingService, slotRepo)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Wait for an interrupt, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Sugar().Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
	logger.Sugar().Info("Server exited")
}
