package postgres

import (
	"context"

	"github.com/taskboard-io/taskboard-api/internal/domain"
	"github.com/taskboard-io/taskboard-api/internal/platform/logger"
)

// TaskStore implements the service layer's task repository against the
// task_mst table. Each method executes exactly one statement on one pooled
// connection; there is no batching and no transaction.
type TaskStore struct {
	db DBTX
}

// NewTaskStore creates a new TaskStore.
func NewTaskStore(db DBTX) *TaskStore {
	return &TaskStore{
		db: db,
	}
}

// Create inserts a new task row. The database assigns the id, the created_on
// timestamp, and the is_deleted default.
func (s *TaskStore) Create(ctx context.Context, name *string, title string, description *string) error {
	log := logger.FromContext(ctx)

	query := `
		INSERT INTO task_mst (task_name, task_title, task_description)
		VALUES ($1, $2, $3)
	`

	if _, err := s.db.Exec(ctx, query, name, title, description); err != nil {
		log.Error("failed to create task",
			"task_title", title,
			"error", err)
		return newStoreError("create", "failed to insert task", err)
	}

	return nil
}

// Update rewrites the mutable fields of an active task and stamps
// updated_on. Soft-deleted rows are not valid targets; matching zero rows
// returns ErrTaskNotFound.
func (s *TaskStore) Update(ctx context.Context, id int64, name *string, title string, description *string) error {
	log := logger.FromContext(ctx)

	query := `
		UPDATE task_mst
		SET task_name = $1, task_title = $2, task_description = $3, updated_on = now()
		WHERE task_id = $4 AND is_deleted = FALSE
	`

	tag, err := s.db.Exec(ctx, query, name, title, description, id)
	if err != nil {
		log.Error("failed to update task",
			"task_id", id,
			"error", err)
		return newStoreError("update", "failed to update task", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// List returns all active tasks, most recently touched first. Rows that have
// never been updated sort after every updated row, ordered among themselves
// by creation recency.
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT task_id, task_name, task_title, task_description, is_deleted, created_on, updated_on
		FROM task_mst
		WHERE is_deleted = FALSE
		ORDER BY updated_on DESC NULLS LAST, created_on DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		log.Error("failed to query tasks", "error", err)
		return nil, newStoreError("list", "failed to query tasks", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Name, &t.Title, &t.Description, &t.IsDeleted, &t.CreatedOn, &t.UpdatedOn); err != nil {
			log.Error("failed to scan task row", "error", err)
			return nil, newStoreError("list", "failed to scan task row", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating task rows", "error", err)
		return nil, newStoreError("list", "error iterating task rows", err)
	}

	return tasks, nil
}

// SoftDelete marks a task deleted and stamps updated_on. The match is on
// task_id alone, so deleting an already-deleted task succeeds idempotently.
// Matching zero rows returns ErrTaskNotFound.
func (s *TaskStore) SoftDelete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query := `
		UPDATE task_mst
		SET is_deleted = TRUE, updated_on = now()
		WHERE task_id = $1
	`

	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		log.Error("failed to delete task",
			"task_id", id,
			"error", err)
		return newStoreError("delete", "failed to delete task", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}

	return nil
}
