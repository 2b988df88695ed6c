package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/doruk/portfolio/internal/bootstrap"
	"github.com/doruk/portfolio/internal/config"
	"github.com/doruk/portfolio/internal/db"
)

// Server represents the HTTP server for the portfolio site
type Server struct {
	router   *gin.Engine
	config   *config.Config
	database *db.Database
	logger   zerolog.Logger
}

// NewServer initializes configuration, database, dependencies and routing
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, err
	}

	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, err
	}

	deps, err := bootstrap.BuildDependencies(cfg, database, lgr)
	if err != nil {
		database.Close()
		return nil, err
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)

	// Serve uploaded files and static assets directly
	router.Static("/uploads", cfg.Server.StoragePath)
	router.Static("/static", "./static")

	return &Server{
		router:   router,
		config:   cfg,
		database: database,
		logger:   lgr,
	}, nil
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:           fmt.Sprintf(":%s", s.config.Server.Port),
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		s.logger.Error().Err(err).Msg("Server error")
		s.Shutdown()
		return err
	case sig := <-quit:
		s.logger.Info().Str("signal", sig.String()).Msg("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Server forced to shutdown")
		s.Shutdown()
		return err
	}

	s.Shutdown()
	s.logger.Info().Msg("Server exited")
	return nil
}

// Shutdown releases server resources
func (s *Server) Shutdown() {
	if s.database != nil {
		if err := s.database.Close(); err != nil {
			s.logger.Error().Err(err).Msg("Error closing database connection")
		}
	}
}
