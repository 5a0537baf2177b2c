package store

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"

	"github.com/espectro-app/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Two hash formats coexist in storage: bcrypt for everything written by this
// codebase, and bare SHA-256 hex digests left behind by installations that
// ran without the bcrypt library. Verification must tolerate both, and
// logins transparently upgrade the weak format.

// HashPassword produces a salted bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func hashSHA256(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// isBcryptHash reports whether a stored hash was produced by bcrypt, by its
// fixed version prefix.
func isBcryptHash(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") ||
		strings.HasPrefix(hash, "$2b$") ||
		strings.HasPrefix(hash, "$2y$")
}

// VerifyPassword checks a password against a stored hash of either format.
// A failed or malformed bcrypt comparison falls through to the SHA-256
// digest compare, so a legacy row always gets its chance.
func VerifyPassword(password, storedHash string) bool {
	if isBcryptHash(storedHash) {
		if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)); err == nil {
			return true
		}
	}
	return hashSHA256(password) == storedHash
}

// upgradeHash replaces a legacy SHA-256 hash with a fresh bcrypt hash of the
// same password. Best-effort: a failure here must never fail the login.
func (s *StoryStore) upgradeHash(user *models.User, password string) {
	if isBcryptHash(user.PasswordHash) {
		return
	}
	newHash, err := HashPassword(password)
	if err != nil {
		log.Printf("store: hash upgrade for user %d skipped: %v", user.ID, err)
		return
	}
	if err := s.db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("password_hash", newHash).Error; err != nil {
		log.Printf("store: hash upgrade for user %d failed: %v", user.ID, err)
		return
	}
	user.PasswordHash = newHash
}
