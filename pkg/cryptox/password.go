package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost balances login latency against brute-force resistance. API keys
// are high-entropy random strings, so the default cost is sufficient.
const bcryptCost = bcrypt.DefaultCost

var ErrMismatch = errors.New("cryptox: credential does not match")

// HashCredential hashes a plaintext credential (API key) for storage.
func HashCredential(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash credential: %w", err)
	}
	return string(hash), nil
}

// VerifyCredential compares a plaintext credential against a stored bcrypt
// hash. Returns ErrMismatch when the credential does not match.
func VerifyCredential(plaintext, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)); err != nil {
		return ErrMismatch
	}
	return nil
}
