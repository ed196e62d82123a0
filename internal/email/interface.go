package email

import (
	"context"

	"personal-assistant/internal/model"
	"personal-assistant/pkg/gmail"
)

// UseCase keeps a local record of fetched mail and drives the mailbox operations that
// go beyond reading and sending.
type UseCase interface {
	// Archive stores fetched messages. Known messages are refreshed and keep their summary.
	Archive(ctx context.Context, msgs []gmail.Message) error

	// Stored lists archived messages, newest first.
	Stored(ctx context.Context, input ListInput) ([]model.Email, error)

	// Inbox lists messages carrying a label straight from the mailbox and archives them.
	Inbox(ctx context.Context, input InboxInput) ([]gmail.Message, error)

	// MarkRead removes the unread flag in the mailbox and in the archive.
	MarkRead(ctx context.Context, id string) error

	// CreateDraft stores a draft in the mailbox and returns its id.
	CreateDraft(ctx context.Context, input DraftInput) (string, error)

	// Summary returns the archived message with its summary, generating and storing the
	// summary on first request. Unknown ids are fetched from the mailbox.
	Summary(ctx context.Context, id string) (model.Email, error)
}

// Mailbox is the mail provider. Calls return gmail.ErrNotConfigured when no credentials
// are available.
type Mailbox interface {
	GetByLabel(ctx context.Context, label string, max int) ([]gmail.Message, error)
	GetMessage(ctx context.Context, id string) (gmail.Message, error)
	MarkAsRead(ctx context.Context, id string) error
	CreateDraft(ctx context.Context, to, subject, body string) (string, error)
}

// Summarizer condenses an email into a couple of sentences.
type Summarizer interface {
	Summarize(ctx context.Context, subject, body string) (string, error)
}
