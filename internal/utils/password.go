package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashAdminPassword hashes an admin password for storage in ADMIN_PASSWORD_HASH
func HashAdminPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyAdminPassword checks a password against the configured bcrypt hash
func VerifyAdminPassword(hash, password string) bool {
	if hash == "" || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
