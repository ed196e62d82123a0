package gmail

import (
	"errors"
	"time"
)

var (
	// ErrNotConfigured is returned by every call on a client built without credentials.
	ErrNotConfigured = errors.New("gmail: service not configured")
	// ErrMessageNotFound is returned when Gmail has no message with the given id.
	ErrMessageNotFound = errors.New("gmail: message not found")
)

// Message is the summary of a mailbox message.
type Message struct {
	ID         string    `json:"id"`
	ThreadID   string    `json:"thread_id,omitempty"`
	Sender     string    `json:"sender"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	Snippet    string    `json:"snippet,omitempty"`
	Unread     bool      `json:"unread"`
	ReceivedAt time.Time `json:"received_at"`
}
