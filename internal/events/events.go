package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ContentChangedEvent records a change to a content file.
type ContentChangedEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Path is the file that changed
	Path string `json:"path"`

	// Op is the filesystem operation, e.g. "WRITE" or "REMOVE"
	Op string `json:"op"`

	// OccurredAt is the timestamp when the change was observed
	OccurredAt time.Time `json:"occurred_at"`
}

// NewContentChangedEvent creates a ContentChangedEvent for the given path and operation.
func NewContentChangedEvent(path, op string) *ContentChangedEvent {
	return &ContentChangedEvent{
		ID:         uuid.New(),
		Path:       path,
		Op:         op,
		OccurredAt: time.Now(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *ContentChangedEvent) error
}

// EventHandlerFunc adapts a function to the EventHandler interface.
type EventHandlerFunc func(ctx context.Context, event *ContentChangedEvent) error

// HandleEvent calls f(ctx, event).
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *ContentChangedEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *ContentChangedEvent) error
}
