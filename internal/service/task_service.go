package service

import (
	"context"
	"log/slog"

	"github.com/taskboard-io/taskboard-api/internal/domain"
	"github.com/taskboard-io/taskboard-api/internal/events"
)

// TaskRepository defines the storage operations the service layer needs.
// It is implemented by postgres.TaskStore.
type TaskRepository interface {
	// Create inserts a new task row.
	Create(ctx context.Context, name *string, title string, description *string) error

	// Update rewrites an active task's fields; returns the store's
	// not-found error when no active row matches.
	Update(ctx context.Context, id int64, name *string, title string, description *string) error

	// List returns all active tasks, most recently touched first.
	List(ctx context.Context) ([]domain.Task, error)

	// SoftDelete marks a task deleted; returns the store's not-found error
	// when the id does not exist.
	SoftDelete(ctx context.Context, id int64) error
}

// TaskService provides task-related operations.
type TaskService interface {
	// Create validates and persists a new task, then emits a create event.
	Create(ctx context.Context, name *string, title string, description *string) error

	// Edit validates and updates an existing active task, then emits an
	// update event.
	Edit(ctx context.Context, id int64, name *string, title string, description *string) error

	// List returns all active tasks. No event is emitted.
	List(ctx context.Context) ([]domain.Task, error)

	// SoftDelete marks a task deleted, then emits a delete event.
	SoftDelete(ctx context.Context, id int64) error
}

// taskService implements TaskService against a repository and an injected
// event publisher. The publisher is a capability, not ambient state: the
// service emits events without knowing anything about the transport.
type taskService struct {
	repo      TaskRepository
	publisher events.Publisher
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo TaskRepository, publisher events.Publisher, log *slog.Logger) TaskService {
	if repo == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("repository cannot be nil for TaskService")
	}
	if publisher == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("publisher cannot be nil for TaskService")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskService")
	}

	return &taskService{
		repo:      repo,
		publisher: publisher,
		logger:    log.With(slog.String("component", "task_service")),
	}
}

// Create validates the title, inserts the row, and emits a create event
// carrying the task title. Validation failures never reach the store.
func (s *taskService) Create(ctx context.Context, name *string, title string, description *string) error {
	if err := domain.ValidateTitle(title); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, name, title, description); err != nil {
		return err
	}

	s.publisher.Publish(events.NewTaskCreated(title))
	return nil
}

// Edit validates the title, updates the active row, and emits an update
// event carrying the task id. A missing or soft-deleted target surfaces as
// the store's not-found error, a normal outcome rather than a fault.
func (s *taskService) Edit(ctx context.Context, id int64, name *string, title string, description *string) error {
	if err := domain.ValidateTitle(title); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, name, title, description); err != nil {
		return err
	}

	s.publisher.Publish(events.NewTaskUpdated(id))
	return nil
}

// List returns all active tasks.
func (s *taskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.repo.List(ctx)
}

// SoftDelete marks the task deleted and emits a delete event carrying the
// task id. Deleting an already-deleted task succeeds idempotently.
func (s *taskService) SoftDelete(ctx context.Context, id int64) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.publisher.Publish(events.NewTaskDeleted(id))
	return nil
}
