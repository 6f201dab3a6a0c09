package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// GenerateSecureToken returns length random bytes hex-encoded.
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}

	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// HashVerifier hashes the secret half of a sign-in token before it is stored.
func HashVerifier(verifier string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(verifier), 10)
	return string(bytes), err
}

func CompareVerifier(hash string, verifier string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(verifier))
}
