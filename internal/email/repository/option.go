package repository

import "errors"

// ErrNotFound is returned by Get, MarkRead and SetSummary for unknown ids.
var ErrNotFound = errors.New("email not found")

// ListOptions holds the parameters for listing archived mail.
type ListOptions struct {
	UnreadOnly bool
	Limit      int // Max number of results (default 20)
}
