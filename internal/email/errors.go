package email

import "errors"

// Domain-specific errors for the email package.
var (
	ErrNotFound         = errors.New("email not found")
	ErrEmptyID          = errors.New("email id is empty")
	ErrInvalidRecipient = errors.New("recipient must be an email address")
	ErrEmptyBody        = errors.New("email body is empty")
	ErrInvalidLabel     = errors.New("unknown mailbox label")
	ErrSummaryFailed    = errors.New("email summary could not be generated")
)
