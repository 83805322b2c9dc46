package main

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/anonto42/microblog/backend/internal/router"
	"github.com/anonto42/microblog/backend/pkg/config"
	"github.com/anonto42/microblog/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg.PostgresURL)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database")
	}
	defer config.CloseDB(db)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db, cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to set up routes")
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
