package repository

import (
	"context"
	"time"

	"personal-assistant/internal/model"
)

// Repository is the persistence contract for fetched mail.
type Repository interface {
	// Upsert inserts e or refreshes a known message. A stored summary is never replaced by
	// an empty one.
	Upsert(ctx context.Context, e model.Email) error
	Get(ctx context.Context, id string) (model.Email, error)
	List(ctx context.Context, opt ListOptions) ([]model.Email, error)
	MarkRead(ctx context.Context, id string, at time.Time) error
	SetSummary(ctx context.Context, id, summary string, at time.Time) error
}
