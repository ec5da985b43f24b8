package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard-io/taskboard-api/internal/domain"
	"github.com/taskboard-io/taskboard-api/internal/events"
	"github.com/taskboard-io/taskboard-api/internal/platform/postgres"
)

// mockTaskRepository records calls and returns configured results.
type mockTaskRepository struct {
	createCalls int
	updateCalls int
	listCalls   int
	deleteCalls int

	createErr error
	updateErr error
	listErr   error
	deleteErr error

	listResult []domain.Task
}

func (m *mockTaskRepository) Create(ctx context.Context, name *string, title string, description *string) error {
	m.createCalls++
	return m.createErr
}

func (m *mockTaskRepository) Update(ctx context.Context, id int64, name *string, title string, description *string) error {
	m.updateCalls++
	return m.updateErr
}

func (m *mockTaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	m.listCalls++
	return m.listResult, m.listErr
}

func (m *mockTaskRepository) SoftDelete(ctx context.Context, id int64) error {
	m.deleteCalls++
	return m.deleteErr
}

// recordingPublisher captures every published event.
type recordingPublisher struct {
	published []events.Event
}

func (p *recordingPublisher) Publish(event events.Event) {
	p.published = append(p.published, event)
}

func newTestService(repo *mockTaskRepository, pub *recordingPublisher) TaskService {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewTaskService(repo, pub, log)
}

func strptr(s string) *string { return &s }

func TestTaskServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("valid title creates task and publishes create event", func(t *testing.T) {
		repo := &mockTaskRepository{}
		pub := &recordingPublisher{}
		svc := newTestService(repo, pub)

		err := svc.Create(context.Background(), strptr("chores"), "Write report", nil)
		require.NoError(t, err)

		assert.Equal(t, 1, repo.createCalls)
		require.Len(t, pub.published, 1)
		assert.Equal(t, events.TypeTaskCreated, pub.published[0].Type)
		assert.Equal(t, "Write report", pub.published[0].Data["task_title"])
	})

	t.Run("empty title never reaches the store and publishes nothing", func(t *testing.T) {
		repo := &mockTaskRepository{}
		pub := &recordingPublisher{}
		svc := newTestService(repo, pub)

		err := svc.Create(context.Background(), nil, "   ", nil)
		assert.ErrorIs(t, err, domain.ErrEmptyTaskTitle)

		assert.Zero(t, repo.createCalls)
		assert.Empty(t, pub.published)
	})

	t.Run("store failure surfaces and publishes nothing", func(t *testing.T) {
		repo := &mockTaskRepository{createErr: errors.New("connection refused")}
		pub := &recordingPublisher{}
		svc := newTestService(repo, pub)

		err := svc.Create(context.Background(), nil, "Write report", nil)
		assert.Error(t, err)
		assert.Empty(t, pub.published)
	})
}

func TestTaskServiceEdit(t *testing.T) {
	t.Parallel()

	t.Run("successful edit publishes update event with task id", func(t *testing.T) {
		repo := &mockTaskRepository{}
		pub := &recordingPublisher{}
		svc := newTestService(repo, pub)

		err := svc.Edit(context.Background(), 42, nil, "New title", strptr("details"))
		require.NoError(t, err)

		assert.Equal(t, 1, repo.updateCalls)
		require.Len(t, pub.published, 1)
		assert.Equal(t, events.TypeTaskUpdated, pub.published[0].Type)
		assert.Equal(t, int64(42), pub.published[0].Data["task_id"])
	})

	t.Run("empty title short-circuits before the store", func(t *testing.T) {
		repo := &mockTaskRepository{}
		pub := &recordingPublisher{}
		svc := newTestService(repo, pub)

		err := svc.Edit(context.Background(), 42, nil, "", nil)
		assert.ErrorIs(t, err, domain.ErrEmptyTaskTitle)

		assert.Zero(t, repo.updateCalls)
		assert.Empty(t, pub.published)
	})

	t.Run("missing or soft-deleted target passes through not-found", func(t *testing.T) {
		repo := &mockTaskRepository{updateErr: postgres.ErrTaskNotFound}
		pub := &recordingPublisher{}
		svc := newTestService(repo, pub)

		err := svc.Edit(context.Background(), 99, nil, "New title", nil)
		assert.ErrorIs(t, err, postgres.ErrTaskNotFound)
		assert.Empty(t, pub.published)
	})
}

func TestTaskServiceList(t *testing.T) {
	t.Parallel()

	t.Run("returns store result and publishes nothing", func(t *testing.T) {
		tasks := []domain.Task{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
		repo := &mockTaskRepository{listResult: tasks}
		pub := &recordingPublisher{}
		svc := newTestService(repo, pub)

		got, err := svc.List(context.Background())
		require.NoError(t, err)

		assert.Equal(t, tasks, got)
		assert.Equal(t, 1, repo.listCalls)
		assert.Empty(t, pub.published)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		repo := &mockTaskRepository{listErr: errors.New("query failed")}
		pub := &recordingPublisher{}
		svc := newTestService(repo, pub)

		_, err := svc.List(context.Background())
		assert.Error(t, err)
	})
}

func TestTaskServiceSoftDelete(t *testing.T) {
	t.Parallel()

	t.Run("successful delete publishes delete event with task id", func(t *testing.T) {
		repo := &mockTaskRepository{}
		pub := &recordingPublisher{}
		svc := newTestService(repo, pub)

		err := svc.SoftDelete(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, 1, repo.deleteCalls)
		require.Len(t, pub.published, 1)
		assert.Equal(t, events.TypeTaskDeleted, pub.published[0].Type)
		assert.Equal(t, int64(7), pub.published[0].Data["task_id"])
	})

	t.Run("nonexistent id passes through not-found", func(t *testing.T) {
		repo := &mockTaskRepository{deleteErr: postgres.ErrTaskNotFound}
		pub := &recordingPublisher{}
		svc := newTestService(repo, pub)

		err := svc.SoftDelete(context.Background(), 404)
		assert.ErrorIs(t, err, postgres.ErrTaskNotFound)
		assert.Empty(t, pub.published)
	})
}

func TestNewTaskServicePanicsOnNilDependencies(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Panics(t, func() { NewTaskService(nil, &recordingPublisher{}, log) })
	assert.Panics(t, func() { NewTaskService(&mockTaskRepository{}, nil, log) })
	assert.Panics(t, func() { NewTaskService(&mockTaskRepository{}, &recordingPublisher{}, nil) })
}
