package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fairmed/app/echo-server/router"
	"fairmed/business/analysis"
	"fairmed/business/mitigation"
	"fairmed/internal/middleware"
	"fairmed/internal/repository/catalog"
	"fairmed/internal/rest"
	"fairmed/pkg/config"
	"fairmed/pkg/logger"
	"fairmed/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting FairMed API", "version", cfg.App.Version)

	metrics.Init()

	// The catalog is the whole data layer: fixed demo reports, verified once
	// here and immutable for the life of the process.
	catalogRepo, err := catalog.NewRepository()
	if err != nil {
		logger.Fatal("Failed to build report catalog", "error", err)
	}

	logger.Info("Report catalog verified", "scenarios", len(catalogRepo.Scenarios()))

	// Init service
	analysisService := analysis.NewService(catalogRepo)
	mitigationService := mitigation.NewService(catalogRepo)

	// Init handler
	healthHandler := rest.NewHealthHandler()
	analysisHandler := rest.NewAnalysisHandler(analysisService)
	mitigationHandler := rest.NewMitigationHandler(mitigationService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupHealthRoutes(api, healthHandler)
	router.SetupAnalysisRoutes(api, analysisHandler)
	router.SetupMitigationRoutes(api, mitigationHandler)

	// Bare health alias for load-balancer probes, prometheus scrape target
	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
