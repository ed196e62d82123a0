package message

import (
	"context"
	"time"

	"personal-assistant/internal/model"
)

// UseCase records chat traffic and lists it back.
type UseCase interface {
	// Record stores an inbound message and the reply it received.
	Record(ctx context.Context, input RecordInput) (model.Message, error)

	// List returns the most recent messages, newest first.
	List(ctx context.Context, input ListInput) ([]model.Message, error)

	// Prune deletes messages older than olderThan and returns how many were removed.
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
}
