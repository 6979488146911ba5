package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/cart"
	"storefront-backend/internal/checkout"
	"storefront-backend/internal/config"
	"storefront-backend/internal/database"
	"storefront-backend/internal/handlers"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/shipping"
)

func main() {
	cfg := config.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cfg.Development {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	log.Logger = logger

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// Session middleware assigns the checkout session ID
	middleware.InitSessionStore(cfg.SessionSecret)

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Admin-Key"},
		AllowCredentials: true,
	}))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.SessionMiddleware())

	// Cart persistence cookie store
	cartCookies := cart.NewCookieStore(cfg.SessionSecret)

	// Carrier client and checkout session registry
	carrier := shipping.NewClient(cfg.CarrierBaseURL, cfg.CarrierToken)
	checkoutManager := checkout.NewManager(carrier, logger)

	// Initialize handlers
	settingsQueries := database.NewSettingsQueries(db)
	cartHandler := handlers.NewCartHandler(cartCookies, logger)
	checkoutHandler := handlers.NewCheckoutHandler(cartCookies, settingsQueries, checkoutManager, logger)
	adminHandler := handlers.NewAdminHandler(settingsQueries)

	// Cart routes
	cartRoutes := r.Group("/api/cart")
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.POST("/add", cartHandler.AddToCart)
		cartRoutes.DELETE("/remove/:key", cartHandler.RemoveFromCart)
		cartRoutes.POST("/increase/:key", cartHandler.IncreaseQuantity)
		cartRoutes.POST("/decrease/:key", cartHandler.DecreaseQuantity)
		cartRoutes.POST("/clear", cartHandler.ClearCart)
		cartRoutes.GET("/count", cartHandler.GetCartCount)
	}

	// Checkout routes
	checkoutRoutes := r.Group("/api/checkout")
	{
		checkoutRoutes.POST("/shipping-fee", checkoutHandler.QuoteShippingFee)
		checkoutRoutes.GET("/draft", checkoutHandler.GetOrderDraft)
	}

	// Admin routes
	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminKeyAuth(cfg.AdminAPIKey))
	{
		admin.GET("/shipping-settings", adminHandler.GetShippingSettings)
		admin.PUT("/shipping-settings", adminHandler.UpdateShippingSettings)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info().Str("port", port).Msg("Server starting")
	if err := r.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
