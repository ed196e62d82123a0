package usecase

import (
	"context"
	"fmt"
	"strings"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/router"
	"personal-assistant/pkg/gmail"
)

// UnreadEmails returns up to limit unread messages; limit <= 0 uses the page size.
// Archiving failures are logged and do not fail the read.
func (uc *implUseCase) UnreadEmails(ctx context.Context, limit int) ([]gmail.Message, error) {
	if limit <= 0 {
		limit = uc.pageSize
	}
	msgs, err := uc.mail.GetUnread(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: unread: %w", LogPrefixEmail, err)
	}
	if uc.archive != nil && len(msgs) > 0 {
		if err := uc.archive.Archive(ctx, msgs); err != nil {
			uc.l.Warnf(ctx, "%s: archive: %v", LogPrefixEmail, err)
		}
	}
	return msgs, nil
}

// SendEmail validates input and sends it.
func (uc *implUseCase) SendEmail(ctx context.Context, input assistant.SendEmailInput) error {
	to := strings.TrimSpace(input.To)
	if !strings.Contains(to, "@") {
		return assistant.ErrInvalidRecipient
	}
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return assistant.ErrEmptyBody
	}
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		subject = router.DefaultEmailSubject
	}

	sent, err := uc.mail.Send(ctx, to, subject, body)
	if err != nil {
		return fmt.Errorf("%s: send: %w", LogPrefixEmail, err)
	}
	if !sent {
		return assistant.ErrSendRejected
	}
	uc.l.Infof(ctx, "%s: sent %q to %s", LogPrefixEmail, subject, to)
	return nil
}
