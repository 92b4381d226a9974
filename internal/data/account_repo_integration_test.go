package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/audioscribe/audioscribe/internal/errors"
	"github.com/audioscribe/audioscribe/internal/testutil"
)

func TestAccountRepo_CreateAndGet(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewAccountRepo(db)

		hash := "$2a$10$abcdefghijklmnopqrstuv"
		created, err := repo.Create(ctx, "alice@example.com", &hash)
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "alice@example.com", created.Email)
		require.NotNil(t, created.PasswordHash)
		assert.Equal(t, hash, *created.PasswordHash)

		got, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})
}

func TestAccountRepo_Create_FederatedAccountHasNoHash(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewAccountRepo(db)

		created, err := repo.Create(context.Background(), "octocat@example.com", nil)
		require.NoError(t, err)
		assert.Nil(t, created.PasswordHash)
	})
}

func TestAccountRepo_Create_DuplicateEmail(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewAccountRepo(db)

		_, err := repo.Create(ctx, "alice@example.com", nil)
		require.NoError(t, err)

		_, err = repo.Create(ctx, "alice@example.com", nil)
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))
	})
}

func TestAccountRepo_CaseSensitiveEmails(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewAccountRepo(db)

		_, err := repo.Create(ctx, "Carol@example.com", nil)
		require.NoError(t, err)

		// Different case is a different account
		_, err = repo.Create(ctx, "carol@example.com", nil)
		require.NoError(t, err)

		got, err := repo.GetByEmail(ctx, "Carol@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Carol@example.com", got.Email)
	})
}

func TestAccountRepo_GetByEmail_NotFound(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewAccountRepo(db)

		_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}
