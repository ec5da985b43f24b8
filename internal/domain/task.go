package domain

import (
	"errors"
	"strings"
	"time"
)

// Common validation errors for Task
var (
	ErrEmptyTaskTitle = errors.New("task title cannot be empty")
)

// Task represents a single tracked task. Rows are never physically
// removed; deletion flips IsDeleted and re-stamps UpdatedOn.
type Task struct {
	ID          int64      `json:"task_id"`
	Name        *string    `json:"task_name"`
	Title       string     `json:"task_title"`
	Description *string    `json:"task_description"`
	IsDeleted   bool       `json:"is_deleted"`
	CreatedOn   time.Time  `json:"created_on"`
	UpdatedOn   *time.Time `json:"updated_on"`
}

// ValidateTitle checks that a task title is non-empty after trimming
// whitespace. Every persisted row must satisfy this invariant.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTaskTitle
	}
	return nil
}
