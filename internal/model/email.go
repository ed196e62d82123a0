package model

import "time"

// Email is a mailbox message the assistant has fetched, keyed by its Gmail id.
type Email struct {
	ID         string // Gmail message id
	ThreadID   string
	Sender     string
	Subject    string
	Body       string
	Summary    string // Empty until a summary is requested
	IsUnread   bool
	ReceivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
