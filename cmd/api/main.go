package main

import (
	"os"

	"github.com/initi8now/waitlist/internal/pkg/logger"
	"github.com/initi8now/waitlist/internal/server"
)

// @title Initi8now Waitlist API
// @version 1.0
// @description Waitlist, newsletter and signup notification API for the Initi8now landing page

// @contact.name API Support
// @contact.email team@initi8now.com

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
