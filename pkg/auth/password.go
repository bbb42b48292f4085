package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MinPasswordLength is the minimum accepted password length
	MinPasswordLength = 8

	// MaxPasswordLength is the bcrypt input ceiling; bcrypt silently
	// truncates beyond 72 bytes, so longer inputs are rejected instead
	MaxPasswordLength = 72

	// DefaultBcryptCost is used when no cost is configured
	DefaultBcryptCost = 12
)

// PasswordHasher hashes and verifies passwords using bcrypt
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a bcrypt-based password hasher.
// Costs outside the valid bcrypt range fall back to DefaultBcryptCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns a salted bcrypt hash of the password. The salt is
// generated fresh on every call, so two hashes of the same input
// differ.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", &ValidationError{Field: "password", Message: fmt.Sprintf("minimum length is %d characters", MinPasswordLength)}
	}
	if len(password) > MaxPasswordLength {
		return "", &ValidationError{Field: "password", Message: fmt.Sprintf("maximum length is %d characters", MaxPasswordLength)}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether the password matches the stored hash.
//
// Verify is a total predicate: malformed or unsupported hashes yield
// false, never an error. Stored hashes carrying the legacy $2y$ tag are
// normalized to $2b$ before comparison so historical records remain
// verifiable.
func (h *PasswordHasher) Verify(password, storedHash string) bool {
	normalized := normalizeHash(storedHash)
	return bcrypt.CompareHashAndPassword([]byte(normalized), []byte(password)) == nil
}

// normalizeHash rewrites the legacy $2y$ bcrypt tag to the canonical
// $2b$ tag
func normalizeHash(hash string) string {
	if strings.HasPrefix(hash, "$2y$") {
		return "$2b$" + hash[len("$2y$"):]
	}
	return hash
}
