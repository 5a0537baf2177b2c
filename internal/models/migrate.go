package models

import (
	"log"

	"gorm.io/gorm"
)

// AutoMigrate creates all tables and indices idempotently. Shared by the
// server, the seeder and the test suites.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&User{},
		&Story{},
		&StoryImage{},
		&Like{},
		&Reaction{},
		&Comment{},
		&Report{},
		&Notification{},
	)
	if err != nil {
		log.Printf("Error running migrations: %v", err)
		return err
	}
	return nil
}
