package main

import (
	"time"

	"kion-order-backend/configs"
	"kion-order-backend/internal/catalog"
	"kion-order-backend/internal/handlers"
	"kion-order-backend/internal/middleware"
	"kion-order-backend/internal/services"
	"kion-order-backend/internal/session"
	"kion-order-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	config := configs.LoadConfig()

	log := logger.New(config.Server.Mode)

	// Set Gin mode
	gin.SetMode(config.Server.Mode)

	// Load the immutable catalog (file path or embedded default)
	catalogStore, err := catalog.Load(config.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Infof("Catalog loaded: %d venues, %d categories", len(catalogStore.Venues()), len(catalogStore.Categories()))

	// Initialize the session store
	ttl := time.Duration(config.Session.TTLMinutes) * time.Minute
	var sessionStore session.Store
	switch config.Session.Store {
	case "redis":
		redisStore, err := session.NewRedisStore(config.Redis.URL, config.Redis.Password, config.Redis.DB, ttl)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		sessionStore = redisStore
		log.Info("Using Redis session store")
	default:
		sessionStore = session.NewMemoryStore(ttl)
		log.Info("Using in-memory session store")
	}

	// Initialize services
	sessionService := services.NewSessionService(catalogStore, sessionStore)
	cartService := services.NewCartService(catalogStore, sessionStore)
	checkoutService := services.NewCheckoutService(sessionStore)
	orderService := services.NewOrderService(catalogStore, sessionStore)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(sessionStore)

	// Initialize handlers
	venueHandler := handlers.NewVenueHandler(catalogStore)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	menuHandler := handlers.NewMenuHandler(catalogStore, sessionService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, orderService)

	// Initialize Gin router
	router := gin.New()
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.CORSMiddleware(config.CORS.AllowOrigins))
	router.Use(middleware.RequestIDMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "kion-order-backend",
		})
	})

	// API routes
	api := router.Group("/api/v1")

	// Register routes
	venueHandler.RegisterRoutes(api)
	sessionHandler.RegisterRoutes(api, sessionMiddleware)
	menuHandler.RegisterRoutes(api, sessionMiddleware)
	cartHandler.RegisterRoutes(api, sessionMiddleware)
	checkoutHandler.RegisterRoutes(api, sessionMiddleware)

	log.Infof("Server starting on port %s", config.Server.Port)
	if err := router.Run(":" + config.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
