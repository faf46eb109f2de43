// Package fake provides in-memory adapter implementations for use case tests.
package fake

import (
	"context"
	"strings"
	"time"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

// PasswordHasher "hashes" by prefixing and accepts passwords of 8+ characters.
type PasswordHasher struct{}

// Hash implements adapter.PasswordHasher.
func (PasswordHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

// Matches implements adapter.PasswordHasher.
func (PasswordHasher) Matches(hash, password string) bool {
	return hash == "hashed:"+password
}

// CheckPolicy implements adapter.PasswordHasher.
func (PasswordHasher) CheckPolicy(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

// TokenService issues tokens of the form "token:<user id>:<role>".
type TokenService struct {
	Expiry time.Time
}

// GenerateAccessToken implements adapter.TokenService.
func (s TokenService) GenerateAccessToken(_ context.Context, user *entity.User) (*adapter.AccessToken, error) {
	return &adapter.AccessToken{
		Token:     "token:" + user.ID.String() + ":" + string(user.Role),
		ExpiresAt: s.Expiry,
	}, nil
}

// ValidateAccessToken implements adapter.TokenService.
func (s TokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 3 || parts[0] != "token" {
		return nil, domainerror.ErrInvalidToken
	}
	claims := &adapter.TokenClaims{Role: entity.UserRole(parts[2]), ExpiresAt: s.Expiry}
	if err := claims.UserID.UnmarshalText([]byte(parts[1])); err != nil {
		return nil, domainerror.ErrInvalidToken
	}
	return claims, nil
}
