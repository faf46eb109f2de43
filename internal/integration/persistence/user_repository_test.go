package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	admin := entity.NewUser("admin@example.com", "Admin", "hash", entity.UserRoleAdmin)
	require.NoError(t, repo.Create(ctx, admin))

	found, err := repo.FindByEmail(ctx, "ADMIN@example.com")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, found.ID)
	assert.True(t, found.IsAdmin())

	dup := entity.NewUser("admin@example.com", "Again", "hash", entity.UserRoleStaff)
	assert.ErrorIs(t, repo.Create(ctx, dup), domainerror.ErrEmailAlreadyExists)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domainerror.ErrUserNotFound)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
