package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelforge/internal/domain"
	"pixelforge/internal/infra/pgfake"
)

func TestUserRepositoryGetByEmail(t *testing.T) {
	db := pgfake.New()
	id := db.AddUser("a@example.com")
	repo := NewUserRepository(db)

	u, err := repo.GetByEmail(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)

	_, err = repo.GetByEmail(context.Background(), "A@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepositoryGetByID(t *testing.T) {
	db := pgfake.New()
	id := db.AddUser("a@example.com")
	repo := NewUserRepository(db)

	u, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", u.Email)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepositoryUpsertByEmail(t *testing.T) {
	repo := NewUserRepository(pgfake.New())

	created, err := repo.UpsertByEmail(context.Background(), " a@example.com ", "Ada")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", created.Email)
	assert.Equal(t, "Ada", created.Name)

	again, err := repo.UpsertByEmail(context.Background(), "a@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, "Ada", again.Name)

	_, err = repo.UpsertByEmail(context.Background(), "  ", "x")
	assert.ErrorIs(t, err, domain.ErrMissingField)
}
