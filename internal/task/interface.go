package task

import (
	"context"

	"personal-assistant/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create stores a new pending task.
	Create(ctx context.Context, input CreateInput) (model.Task, error)

	// Detail returns one task.
	Detail(ctx context.Context, id string) (model.Task, error)

	// List returns tasks, optionally filtered by status.
	List(ctx context.Context, input ListInput) ([]model.Task, error)

	// Cancel stops a pending task from running.
	Cancel(ctx context.Context, id string) (model.Task, error)

	// Delete removes a task that is not running.
	Delete(ctx context.Context, id string) error

	// ProcessPending runs every pending task that is due, feeding its command to the
	// assistant and delivering the reply.
	ProcessPending(ctx context.Context) (ProcessOutput, error)

	// CountPending returns the number of pending tasks.
	CountPending(ctx context.Context) (int, error)
}

// Responder produces the assistant reply for a natural language command.
type Responder interface {
	Respond(ctx context.Context, text string) string
}

// Notifier delivers a reply to a chat.
type Notifier interface {
	Send(ctx context.Context, chatID int64, text string) bool
}
