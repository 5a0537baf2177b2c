package router

import (
	"log"

	"github.com/espectro-app/backend/internal/handlers"
	"github.com/espectro-app/backend/internal/middleware"
	"github.com/espectro-app/backend/internal/models"
	"github.com/espectro-app/backend/internal/store"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB) {
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	storyStore := store.New(db)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(storyStore)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// Story routes
	storyHandler := handlers.NewStoryHandler(storyStore)
	storyHandler.RegisterStoryRoutes(api)
	log.Println("Story routes configured.")

	// Like and reaction routes
	interactionHandler := handlers.NewInteractionHandler(storyStore)
	interactionHandler.RegisterInteractionRoutes(api)
	log.Println("Interaction routes configured.")

	// Report routes
	moderationHandler := handlers.NewModerationHandler(storyStore)
	moderationHandler.RegisterModerationRoutes(api)
	log.Println("Moderation routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(storyStore)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}
