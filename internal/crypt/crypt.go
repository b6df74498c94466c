package crypt

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const apiKeyPrefix = "sk-"

func HashValue(v string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(v), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyHash(hash, v string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(v))
	return err == nil
}

// GenerateAPIKey returns an sk- prefixed key backed by a random UUID.
func GenerateAPIKey() string {
	return apiKeyPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
