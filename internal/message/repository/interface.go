package repository

import (
	"context"
	"time"

	"personal-assistant/internal/model"
)

// Repository is the persistence contract for chat messages.
type Repository interface {
	Create(ctx context.Context, msg model.Message) error
	List(ctx context.Context, opt ListOptions) ([]model.Message, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ListOptions holds the parameters for listing messages.
type ListOptions struct {
	ChatID int64 // Filter by chat, 0 for all
	Limit  int   // Max number of results (default 20)
}
