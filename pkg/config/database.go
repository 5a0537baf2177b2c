package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB holds the database connection
type DB struct {
	Gorm *gorm.DB
}

// InitDB opens the storage location named by DATABASE_URL, a SQLite file
// path by default or a PostgreSQL DSN, and verifies the connection.
// TranslateError is on so unique-constraint violations surface as
// gorm.ErrDuplicatedKey on either driver; the store treats that as its
// duplicate gate.
func InitDB(databaseURL string) (*DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	db, err := gorm.Open(openDialector(databaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	log.Println("Successfully connected to database!")
	return &DB{Gorm: db}, nil
}

// openDialector picks the driver from the shape of the storage location:
// anything that looks like a PostgreSQL DSN goes to the postgres driver,
// everything else is treated as a SQLite file path.
func openDialector(databaseURL string) gorm.Dialector {
	if strings.HasPrefix(databaseURL, "postgres://") ||
		strings.HasPrefix(databaseURL, "postgresql://") ||
		strings.Contains(databaseURL, "host=") {
		return postgres.Open(databaseURL)
	}
	return sqlite.Open(databaseURL)
}

// CloseDB closes the database connection
func (db *DB) CloseDB() {
	sqlDB, err := db.Gorm.DB()
	if err != nil {
		log.Printf("Error getting SQL DB from GORM: %v\n", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v\n", err)
	} else {
		log.Println("Database connection closed.")
	}
}
