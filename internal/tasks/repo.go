package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dheurymy/api-task-manager/internal/apperr"
	"github.com/dheurymy/api-task-manager/internal/dbx"
)

// Repository persists tasks. Every query carries the owning user's id in its
// predicate, so a task belonging to someone else behaves exactly like a task
// that does not exist.
type Repository struct {
	db dbx.DBTX
}

func NewRepository(db dbx.DBTX) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, task *Task) error {
	task.ID = uuid.NewString()

	query := `INSERT INTO tasks (id, user_id, text, category)
	          VALUES ($1, $2, $3, $4)
	          RETURNING is_completed, created_at`

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.UserID, task.Text, task.Category).
		Scan(&task.IsCompleted, &task.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Task, error) {
	query := `SELECT id, user_id, text, category, is_completed, created_at FROM tasks
	          WHERE user_id = $1
	          ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]Task, 0)
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Text, &t.Category, &t.IsCompleted, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

// Update applies the non-nil fields to the user's task and returns the
// updated row. A missing or foreign task yields apperr.ErrNotFound.
func (r *Repository) Update(ctx context.Context, userID, id string, fields UpdateFields) (*Task, error) {
	query := `UPDATE tasks
	          SET text = COALESCE($1, text),
	              category = COALESCE($2, category),
	              is_completed = COALESCE($3, is_completed)
	          WHERE id = $4 AND user_id = $5
	          RETURNING id, user_id, text, category, is_completed, created_at`

	task := &Task{}
	err := r.db.QueryRowContext(ctx, query,
		fields.Text, fields.Category, fields.IsCompleted, id, userID).
		Scan(&task.ID, &task.UserID, &task.Text, &task.Category, &task.IsCompleted, &task.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return task, nil
}

func (r *Repository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
