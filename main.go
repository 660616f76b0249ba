package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medico/api"
	"medico/config"
	"medico/handlers"
	"medico/middleware"
	"medico/routes"
	"medico/services/account"
	"medico/utils"

	"github.com/gin-gonic/gin"
)

// sessionTTL bounds the signed session cookie. The backend bearer token has no
// expiry handling at all; an invalid token only surfaces when a call fails.
const sessionTTL = 72 * time.Hour

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.LoadHTMLGlob("templates/*.html")
	router.Static("/static", "./static")

	// Backend client and session codec.
	backend := api.NewClient(
		config.AppConfig.APIBaseURL,
		time.Duration(config.AppConfig.APITimeoutSeconds)*time.Second,
		logger,
	)
	sessions := account.NewSessions(config.AppConfig.SessionSecret, sessionTTL)

	// Page handlers.
	pageHandler := handlers.New(backend, sessions, logger)

	// Register routes.
	routes.RegisterRoutes(router, pageHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
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
