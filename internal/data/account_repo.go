// Package data provides the Postgres-backed repositories for accounts and jobs.
package data

import (
	"context"
	"database/sql"

	"github.com/audioscribe/audioscribe/internal/domain/model"
	apperrors "github.com/audioscribe/audioscribe/internal/errors"
)

// AccountRepo provides database operations for the credential store.
//
// Email lookups use plain equality, so identifiers are case-sensitive:
// "Carol@x.com" and "carol@x.com" are distinct accounts.
type AccountRepo struct {
	DB *sql.DB
}

// NewAccountRepo creates a new AccountRepo with the given database connection.
func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{DB: db}
}

const accountColumns = `id, email, password_hash, created_at`

// Create inserts a new account row. passwordHash may be nil for accounts
// created via federated login. A duplicate email yields a Conflict error.
func (r *AccountRepo) Create(ctx context.Context, email string, passwordHash *string) (*model.Account, error) {
	if email == "" {
		return nil, apperrors.Validation("email is required")
	}

	row := r.DB.QueryRowContext(ctx, `
		INSERT INTO accounts (email, password_hash)
		VALUES ($1, $2)
		RETURNING `+accountColumns, email, passwordHash)

	account, err := scanAccount(row)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return account, nil
}

// GetByEmail returns the account with the given email, or a NotFound error.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE email = $1`, email)

	account, err := scanAccount(row)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return account, nil
}

func scanAccount(row *sql.Row) (*model.Account, error) {
	var a model.Account
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
