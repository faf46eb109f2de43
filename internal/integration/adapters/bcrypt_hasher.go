// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/bizportal/backend/internal/application/adapter"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

const (
	// DefaultBcryptCost is the bcrypt cost used for staff passwords.
	DefaultBcryptCost = 12

	minPasswordLength = 8
	// bcrypt only reads the first 72 bytes.
	maxPasswordBytes = 72
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the default bcrypt cost.
func NewBcryptHasher() adapter.PasswordHasher {
	return NewBcryptHasherWithCost(DefaultBcryptCost)
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost, clamped to bcrypt's minimum.
// Tests use the minimum to keep logins fast.
func NewBcryptHasherWithCost(cost int) adapter.PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash implements adapter.PasswordHasher.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.CheckPolicy(password); err != nil {
		return "", err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hashed), nil
}

// Matches implements adapter.PasswordHasher.
func (h *bcryptHasher) Matches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CheckPolicy implements adapter.PasswordHasher.
func (h *bcryptHasher) CheckPolicy(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordBytes {
		return domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			fmt.Sprintf("password must be %d to %d characters long", minPasswordLength, maxPasswordBytes),
			domainerror.ErrWeakPassword,
		)
	}
	return nil
}
