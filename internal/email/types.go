package email

import "strings"

// DefaultLabel is the label Inbox lists when none is given.
const DefaultLabel = "INBOX"

// Labels lists the mailbox labels Inbox accepts.
var Labels = []string{"INBOX", "STARRED", "SENT", "DRAFT", "SPAM", "TRASH", "IMPORTANT", "UNREAD"}

// NormalizeLabel upper-cases label and applies the default.
func NormalizeLabel(label string) string {
	label = strings.ToUpper(strings.TrimSpace(label))
	if label == "" {
		return DefaultLabel
	}
	return label
}

// InboxInput is the input of UseCase.Inbox.
type InboxInput struct {
	Label string // Defaults to INBOX
	Limit int
}

// ListInput is the input of UseCase.Stored.
type ListInput struct {
	UnreadOnly bool
	Limit      int
}

// DraftInput is the input of UseCase.CreateDraft.
type DraftInput struct {
	To      string
	Subject string
	Body    string
}
