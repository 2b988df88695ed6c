package main

import (
	"os"

	"github.com/doruk/portfolio/internal/pkg/logger"
	"github.com/doruk/portfolio/internal/server"
)

func main() {
	// NewServer orchestrates config loading, database setup, migrations,
	// dependency wiring and routing
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal is received
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
