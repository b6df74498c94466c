package webauth

import "github.com/thisisthemurph/webauth/internal/crypt"

// HashPassword hashes a plain text password for storage.
func HashPassword(password string) (string, error) {
	return crypt.HashValue(password)
}

// VerifyPassword reports whether the plain text password matches the stored hash.
func VerifyPassword(password, hash string) bool {
	return crypt.VerifyHash(hash, password)
}

// GenerateAPIKey returns a new API key in the "sk-" prefixed format.
func GenerateAPIKey() string {
	return crypt.GenerateAPIKey()
}
