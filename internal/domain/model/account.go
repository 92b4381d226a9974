package model

import "time"

// Account represents an authenticated identity. Email is the unique identifier
// and is matched case-sensitively. PasswordHash is nil for accounts created via
// federated login; such accounts can only authenticate through that flow.
type Account struct {
	ID           int64     `json:"id"         db:"id"`
	Email        string    `json:"email"      db:"email"`
	PasswordHash *string   `json:"-"          db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
