package events

import (
	"github.com/google/uuid"
)

// Type identifies the kind of notification event sent to real-time clients.
type Type string

// Event types broadcast over the real-time channel.
const (
	TypeTaskCreated Type = "create"
	TypeTaskUpdated Type = "update"
	TypeTaskDeleted Type = "delete"
	TypeConnected   Type = "connected"
)

// Event is a transient notification pushed to connected clients after a
// successful mutation. It is constructed, broadcast once, and discarded:
// no persistence, no replay, no ordering guarantee.
type Event struct {
	// ID correlates an event across log lines. It is never sent on the wire.
	ID uuid.UUID `json:"-"`

	// Type indicates which mutation produced the event.
	Type Type `json:"type"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Data carries the event-specific payload (task title or task id).
	Data map[string]any `json:"data,omitempty"`
}

// NewTaskCreated builds the event emitted after a task is created.
func NewTaskCreated(title string) Event {
	return Event{
		ID:      uuid.New(),
		Type:    TypeTaskCreated,
		Message: "New task created",
		Data:    map[string]any{"task_title": title},
	}
}

// NewTaskUpdated builds the event emitted after a task is edited.
func NewTaskUpdated(taskID int64) Event {
	return Event{
		ID:      uuid.New(),
		Type:    TypeTaskUpdated,
		Message: "Task updated",
		Data:    map[string]any{"task_id": taskID},
	}
}

// NewTaskDeleted builds the event emitted after a task is soft-deleted.
func NewTaskDeleted(taskID int64) Event {
	return Event{
		ID:      uuid.New(),
		Type:    TypeTaskDeleted,
		Message: "Task deleted",
		Data:    map[string]any{"task_id": taskID},
	}
}

// NewConnected builds the acknowledgment sent to a client right after it
// connects to the real-time channel.
func NewConnected() Event {
	return Event{
		ID:      uuid.New(),
		Type:    TypeConnected,
		Message: "WebSocket connection established",
	}
}

// Publisher is the capability the task service uses to emit events without
// owning the transport. Publish is fire-and-forget: delivery is best-effort
// and a failed or skipped delivery never surfaces to the caller.
type Publisher interface {
	Publish(event Event)
}
