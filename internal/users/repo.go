package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dheurymy/api-task-manager/internal/apperr"
	"github.com/dheurymy/api-task-manager/internal/dbx"
)

// pgUniqueViolation is the Postgres error code for a unique constraint hit.
const pgUniqueViolation = "23505"

type Repository struct {
	db dbx.DBTX
}

func NewRepository(db dbx.DBTX) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user. The caller provides the already-hashed password;
// a duplicate email surfaces as apperr.ErrEmailTaken.
func (r *Repository) Create(ctx context.Context, user *User) error {
	user.ID = uuid.NewString()

	query := `INSERT INTO users (id, name, email, password_hash)
	          VALUES ($1, $2, $3, $4)
	          RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash).Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperr.ErrEmailTaken
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByEmail looks up a user by exact (case-sensitive) email.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, name, email, password_hash, created_at FROM users
	          WHERE email = $1`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}
