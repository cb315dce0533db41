// Package auth implements password hashing and bearer token issuance for the
// lending backend.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt digest of the plaintext. Each call salts
// freshly, so hashing the same password twice yields different digests.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the plaintext matches the stored digest.
// A malformed digest is treated as a mismatch.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
