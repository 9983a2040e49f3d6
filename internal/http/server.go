// Package http provides the API server: routing, middleware, and lifecycle.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/cardvault/internal/auth/http"
	authService "github.com/allisson/cardvault/internal/auth/service"
	cardHTTP "github.com/allisson/cardvault/internal/card/http"
	"github.com/allisson/cardvault/internal/config"
	userHTTP "github.com/allisson/cardvault/internal/user/http"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates the API server and wires all routes.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	tokenService authService.TokenService,
	userHandler *userHTTP.UserHandler,
	tokenHandler *authHTTP.TokenHandler,
	cardHandler *cardHTTP.CardHandler,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	v1 := router.Group("/v1")

	// Public endpoints
	v1.POST("/users", userHandler.RegisterHandler)

	tokenRoutes := v1.Group("/auth")
	if cfg.RateLimitTokenEnabled {
		tokenRoutes.Use(authHTTP.TokenRateLimitMiddleware(
			cfg.RateLimitTokenRequestsPerSec,
			cfg.RateLimitTokenBurst,
			logger,
		))
	}
	tokenRoutes.POST("/token", tokenHandler.IssueTokenHandler)

	// Authenticated endpoints
	v1.GET("/users/me", authHTTP.AuthenticationMiddleware(tokenService, logger), userHandler.MeHandler)

	cards := v1.Group("/cards")
	cards.Use(authHTTP.AuthenticationMiddleware(tokenService, logger))
	cards.POST("", cardHandler.CreateHandler)
	cards.GET("/lookup", cardHandler.LookupHandler)
	cards.POST("/batch", cardHandler.BatchImportHandler)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the API HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
