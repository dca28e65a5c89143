package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost keeps hash verification around the 100ms mark on
// current hardware.
const DefaultBcryptCost = 12

// HashPassword derives a salted bcrypt hash from a plaintext password.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the candidate matches the stored hash.
// bcrypt's comparison is constant-time over the derived key.
func CheckPassword(hash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
