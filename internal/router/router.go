package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/anonto42/microblog/backend/internal/handlers"
	"github.com/anonto42/microblog/backend/internal/middleware"
	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/repositories"
	"github.com/anonto42/microblog/backend/internal/services"
	"github.com/anonto42/microblog/backend/internal/storage"
	"github.com/anonto42/microblog/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	logrus.Info("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
	if err != nil {
		return err
	}
	logrus.Info("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	groupRepo := repositories.NewPostgresGroupRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)

	// --- Initialize Services ---
	postService := services.NewPostService(postRepo, groupRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)
	followService := services.NewFollowService(followRepo, userRepo)
	feedService := services.NewFeedService(postRepo, groupRepo, userRepo, followRepo, cfg.PageSize)

	images, err := storage.NewImageStore(cfg.MediaRoot)
	if err != nil {
		return err
	}

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	logrus.Info("Auth routes configured.")

	// --- Public read routes (identity optional, used for personalization) ---
	public := e.Group("/api/v1")
	public.Use(middleware.OptionalJWTAuthMiddleware(cfg.JWTSecret))

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	logrus.Info("JWT authentication middleware applied to mutation routes.")

	postHandler := handlers.NewPostHandler(postService, commentService, images, cfg.PostPreviewLen)
	postHandler.RegisterPostRoutes(api)
	postHandler.RegisterPublicPostRoutes(public)
	logrus.Info("Post routes configured.")

	feedHandler := handlers.NewFeedHandler(feedService, followService)
	feedHandler.RegisterFeedRoutes(api)
	feedHandler.RegisterPublicFeedRoutes(public)
	logrus.Info("Feed routes configured.")

	followHandler := handlers.NewFollowHandler(followService)
	followHandler.RegisterFollowRoutes(api)
	followHandler.RegisterPublicFollowRoutes(public)
	logrus.Info("Follow routes configured.")

	groupHandler := handlers.NewGroupHandler(groupRepo)
	groupHandler.RegisterGroupRoutes(api)
	groupHandler.RegisterPublicGroupRoutes(public)
	logrus.Info("Group routes configured.")

	logrus.Info("All routes configured.")
	return nil
}
