package main

import (
	"os"

	"github.com/kevinjohn-15/IWP-CIA-3/internal/pkg/logger" // Still needed for initial error logging
	"github.com/kevinjohn-15/IWP-CIA-3/internal/server"
)

// @title Faculty Directory API
// @version 1.0
// @description REST API for the faculty name directory

// @contact.name Kevin John

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http

func main() {
	// Initialize the server with all its dependencies
	srv, err := server.NewServer()
	if err != nil {
		// Use the default logger setup by the logger package's init
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	// If Run completes without error, graceful shutdown was successful.
	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
