package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrInvalidRecipient  = errors.New("recipient is not an email address")
	ErrEmptyBody         = errors.New("message body is empty")
	ErrSendRejected      = errors.New("mail provider rejected the message")
	ErrCollaboratorPanic = errors.New("collaborator panicked")
)
