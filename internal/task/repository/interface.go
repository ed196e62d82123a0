package repository

import (
	"context"
	"time"

	"personal-assistant/internal/model"
)

// Repository is the persistence contract for tasks.
type Repository interface {
	Create(ctx context.Context, t model.Task) error
	Get(ctx context.Context, id string) (model.Task, error)
	List(ctx context.Context, opt ListOptions) ([]model.Task, error)
	Update(ctx context.Context, t model.Task) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, status model.TaskStatus) (int, error)

	// ListDue returns pending tasks whose scheduled time is unset or not after now,
	// oldest first.
	ListDue(ctx context.Context, now time.Time, limit int) ([]model.Task, error)

	// Claim moves a task from pending to running. It reports false when another
	// runner got there first.
	Claim(ctx context.Context, id string, now time.Time) (bool, error)
}
