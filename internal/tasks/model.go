package tasks

import "time"

// Task is a unit of work owned by exactly one user. The owner is stamped at
// creation and never reassigned.
type Task struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"userId"`
	Text        string    `db:"text" json:"text"`
	Category    string    `db:"category" json:"category"`
	IsCompleted bool      `db:"is_completed" json:"isCompleted"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// UpdateFields carries the mutable subset of a task. A nil field is left
// untouched by an update.
type UpdateFields struct {
	Text        *string `json:"text"`
	Category    *string `json:"category"`
	IsCompleted *bool   `json:"isCompleted"`
}
