package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"location-service-go/internal/geoapi"
	"location-service-go/internal/handler"
	"location-service-go/internal/location"
	"location-service-go/internal/middleware"
	"location-service-go/pkg/config"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Connect to database
	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Remote location API client. With no key configured the resolver skips
	// the API step entirely and serves from the static table or the database.
	apiClient := geoapi.NewClient(geoapi.Config{
		APIKey:  cfg.CSCAPIKey,
		BaseURL: cfg.CSCBaseURL,
	})
	if !apiClient.Configured() {
		log.Printf("CSC_API_KEY not set, serving locations from static data and database only")
	}

	// Initialize store and resolver
	store := location.NewStore(db)
	resolver := location.NewResolver(store, apiClient)

	// Initialize handlers
	locationHandler := handler.NewLocationHandler(resolver)
	adminHandler := handler.NewAdminHandler(store)

	// Set up Gin router
	router := gin.Default()

	corsConfig := cors.Config{
		AllowOrigins:     []string{"http://localhost:8081"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}
	router.Use(cors.New(corsConfig))

	// Public location routes
	locations := router.Group("/api/locations")
	{
		locations.GET("/countries", locationHandler.GetCountries)
		locations.GET("/states", locationHandler.GetStates)
		locations.GET("/cities", locationHandler.GetCities)
		locations.GET("/countries/:country_code/states", locationHandler.GetStatesByCountryCode)
		locations.GET("/countries/:country_code/states/:state_code/cities", locationHandler.GetCitiesByStateCode)
	}

	// Admin-scoped routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		admin.GET("/states", adminHandler.GetScopedStates)
		admin.GET("/cities", adminHandler.GetScopedCities)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
