package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/bookowl/backend/auth"
	"github.com/bookowl/backend/config"
	"github.com/bookowl/backend/database"
	"github.com/bookowl/backend/models"
	"github.com/bookowl/backend/services"
	"github.com/joho/godotenv"
)

var sampleBooks = []models.Book{
	{Title: "The Go Programming Language", Author: "Alan A. A. Donovan", Copies: 3},
	{Title: "Designing Data-Intensive Applications", Author: "Martin Kleppmann", Copies: 2},
	{Title: "The Pragmatic Programmer", Author: "Andrew Hunt", Copies: 1},
	{Title: "Clean Architecture", Author: "Robert C. Martin", Copies: 2},
	{Title: "Site Reliability Engineering", Author: "Betsy Beyer", Copies: 1},
}

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
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer database.Close()

	fmt.Println("🌱 Starting seed...")

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	accounts := services.NewAccountService(database.DB, tokens)

	// Bootstrap admin, skipped when one already exists
	admin, err := accounts.CreateAdminUser("admin@example.com", "changeme")
	switch {
	case errors.Is(err, services.ErrAdminExists):
		log.Println("Admin already exists, skipping")
	case err != nil:
		log.Fatalf("❌ Failed to create admin user: %v", err)
	default:
		log.Printf("✅ Admin user created: %s (id=%d)", admin.Email, admin.ID)
	}

	// Seed the catalog, skipping titles that are already present
	seeded := 0
	for _, book := range sampleBooks {
		var count int64
		if err := database.DB.Model(&models.Book{}).Where("title = ?", book.Title).Count(&count).Error; err != nil {
			log.Fatalf("❌ Failed to check catalog: %v", err)
		}
		if count > 0 {
			continue
		}
		if err := database.DB.Create(&book).Error; err != nil {
			log.Fatalf("❌ Failed to seed book %q: %v", book.Title, err)
		}
		seeded++
	}

	fmt.Printf("✅ Seed complete: %d books added\n", seeded)
}
