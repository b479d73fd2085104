// File: tripcart/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripcart/config"
	"tripcart/database"
	"tripcart/handlers"
	"tripcart/middleware"
	"tripcart/routes"
	"tripcart/services/cart"
	"tripcart/services/places"
	"tripcart/utils"
)

func main() {
	cfg := config.LoadConfig()
	logger := utils.InitializeLogger(cfg.IsProduction(), cfg.LogLevel)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	backend, err := database.OpenBackend(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("main: failed to open cart storage", zap.Error(err))
	}

	// repositories and services.
	store, persister := cart.Open(ctx, backend.Repo, cfg.CartStorageKey, logger)

	monitor := utils.NewHealthMonitor(backend.Name, backend.Repo, 60*time.Second, logger)
	monitor.Start(ctx)

	var placesHandler *handlers.PlacesHandler
	if cfg.GoogleAPIKey != "" {
		placesClient := places.NewClient(cfg.GoogleAPIKey, cfg.PlacesRadiusMeters, logger)
		placesHandler = handlers.NewPlacesHandler(placesClient, store)
	} else {
		logger.Warn("main: GOOGLE_API_KEY not set; nearby places endpoints disabled")
	}

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewCartHandler(store),
		placesHandler,
		&handlers.HealthHandler{Monitor: monitor, Persister: persister},
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, cfg.Origins())

	port := cfg.AppPort
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	// Flush the last cart snapshot before the storage goes away.
	if err := persister.Close(shutdownCtx); err != nil {
		logger.Error("main: failed to flush cart snapshot", zap.Error(err))
	}
	stop()
	if err := backend.Close(); err != nil {
		logger.Error("main: failed to close cart storage", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
