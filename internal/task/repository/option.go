package repository

import (
	"errors"

	"personal-assistant/internal/model"
)

// ErrNotFound is returned by Get, Update and Delete for unknown ids.
var ErrNotFound = errors.New("task not found")

// ListOptions holds the parameters for listing tasks.
type ListOptions struct {
	Status model.TaskStatus // Filter by status, empty for all
	Limit  int              // Max number of results (default 20)
}
