// Command seed populates the configured database with demo accounts,
// sample stories and fabricated interactions.
package main

import (
	"log"

	"github.com/espectro-app/backend/internal/models"
	"github.com/espectro-app/backend/internal/store"
	"github.com/espectro-app/backend/pkg/config"
)

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	if err := models.AutoMigrate(db.Gorm); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	store.New(db.Gorm).Seed()
	log.Println("Seeding completed.")
}
