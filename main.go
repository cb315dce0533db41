package main

import (
	"log"
	"os"

	"github.com/bookowl/backend/auth"
	"github.com/bookowl/backend/config"
	"github.com/bookowl/backend/database"
	"github.com/bookowl/backend/handlers"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	// Connect to database
	if err := database.Connect(cfg.DatabaseURL); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
	defer database.Close()

	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	api := handlers.New(database.DB, tokens)
	router := handlers.NewRouter(api)

	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
