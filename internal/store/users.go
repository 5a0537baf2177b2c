package store

import (
	"errors"
	"log"

	"github.com/espectro-app/backend/internal/models"
	"gorm.io/gorm"
)

// Register creates a new account. Returns false when username or email is
// already taken (the unique indexes are the arbiter, not a pre-check) or
// when any required field is empty.
func (s *StoryStore) Register(username, email, password string) bool {
	if username == "" || email == "" || password == "" {
		return false
	}

	hash, err := HashPassword(password)
	if err != nil {
		log.Printf("store: register %q: hashing failed: %v", username, err)
		return false
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false
		}
		log.Printf("store: register %q failed: %v", username, err)
		return false
	}
	return true
}

// Authenticate returns the user record for a valid (username, password)
// pair, nil otherwise. A successful login against a legacy SHA-256 hash
// upgrades the stored hash to bcrypt as a side effect.
func (s *StoryStore) Authenticate(username, password string) *models.User {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("store: authenticate %q failed: %v", username, err)
		}
		return nil
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil
	}

	s.upgradeHash(&user, password)
	return &user
}

// UserByID retrieves a user by primary key.
func (s *StoryStore) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
