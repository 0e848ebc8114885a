package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a one-way bcrypt digest from a plaintext password.
//
// bcrypt embeds its own salt and cost factor in the digest, so digests
// produced with different costs keep verifying after the configured cost
// changes. Passing cost <= 0 selects [bcrypt.DefaultCost].
//
// The digest is safe to store at rest; the plaintext must never be persisted.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether password matches the stored bcrypt digest.
// The comparison is one-way: the digest is never reversed.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
