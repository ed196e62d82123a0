package message

import "errors"

// Domain-specific errors for the message package.
var (
	ErrEmptyText = errors.New("message text is empty")
)
