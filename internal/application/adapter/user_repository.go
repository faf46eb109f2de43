// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/domain/entity"
)

// UserRepository defines the interface for staff account persistence operations.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll returns every staff account.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Count returns the number of staff accounts.
	Count(ctx context.Context) (int64, error)
}
