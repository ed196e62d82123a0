package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"personal-assistant/internal/email"
	"personal-assistant/internal/email/repository"
	"personal-assistant/internal/model"
	"personal-assistant/internal/router"
	"personal-assistant/pkg/gmail"
)

func (uc *implUseCase) Archive(ctx context.Context, msgs []gmail.Message) error {
	now := uc.now()
	for _, m := range msgs {
		if err := uc.repo.Upsert(ctx, toEmail(m, now)); err != nil {
			return fmt.Errorf("archive %s: %w", m.ID, err)
		}
	}
	return nil
}

func (uc *implUseCase) Stored(ctx context.Context, input email.ListInput) ([]model.Email, error) {
	emails, err := uc.repo.List(ctx, repository.ListOptions{
		UnreadOnly: input.UnreadOnly,
		Limit:      clampLimit(input.Limit),
	})
	if err != nil {
		return nil, fmt.Errorf("list emails: %w", err)
	}
	return emails, nil
}

func (uc *implUseCase) Inbox(ctx context.Context, input email.InboxInput) ([]gmail.Message, error) {
	label := email.NormalizeLabel(input.Label)
	if !slices.Contains(email.Labels, label) {
		return nil, email.ErrInvalidLabel
	}

	msgs, err := uc.mailbox.GetByLabel(ctx, label, clampLimit(input.Limit))
	if err != nil {
		return nil, fmt.Errorf("inbox %s: %w", label, err)
	}
	if err := uc.Archive(ctx, msgs); err != nil {
		uc.l.Warnf(ctx, "email.usecase.Inbox: %v", err)
	}
	return msgs, nil
}

func (uc *implUseCase) MarkRead(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return email.ErrEmptyID
	}

	if err := uc.mailbox.MarkAsRead(ctx, id); err != nil {
		if errors.Is(err, gmail.ErrMessageNotFound) {
			return email.ErrNotFound
		}
		return fmt.Errorf("mark read: %w", err)
	}

	// The mailbox is the source of truth; a message never fetched has no local row.
	if err := uc.repo.MarkRead(ctx, id, uc.now()); err != nil && !errors.Is(err, repository.ErrNotFound) {
		uc.l.Warnf(ctx, "email.usecase.MarkRead: %s: %v", id, err)
	}
	uc.l.Infof(ctx, "email.usecase.MarkRead: %s marked read", id)
	return nil
}

func (uc *implUseCase) CreateDraft(ctx context.Context, input email.DraftInput) (string, error) {
	to := strings.TrimSpace(input.To)
	if !strings.Contains(to, "@") {
		return "", email.ErrInvalidRecipient
	}
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return "", email.ErrEmptyBody
	}
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		subject = router.DefaultEmailSubject
	}

	id, err := uc.mailbox.CreateDraft(ctx, to, subject, body)
	if err != nil {
		return "", fmt.Errorf("create draft: %w", err)
	}
	uc.l.Infof(ctx, "email.usecase.CreateDraft: draft %s to %s", id, to)
	return id, nil
}

func (uc *implUseCase) Summary(ctx context.Context, id string) (model.Email, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Email{}, email.ErrEmptyID
	}

	e, err := uc.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		e, err = uc.fetch(ctx, id)
	}
	if err != nil {
		return model.Email{}, err
	}
	if e.Summary != "" {
		return e, nil
	}

	summary, err := uc.summarizer.Summarize(ctx, e.Subject, e.Body)
	if err != nil {
		uc.l.Errorf(ctx, "email.usecase.Summary: %s: %v", id, err)
		return model.Email{}, fmt.Errorf("%w: %w", email.ErrSummaryFailed, err)
	}
	now := uc.now()
	if err := uc.repo.SetSummary(ctx, id, summary, now); err != nil {
		return model.Email{}, fmt.Errorf("store summary: %w", err)
	}
	e.Summary = summary
	e.UpdatedAt = now
	return e, nil
}

// fetch loads a message the archive has not seen and stores it.
func (uc *implUseCase) fetch(ctx context.Context, id string) (model.Email, error) {
	m, err := uc.mailbox.GetMessage(ctx, id)
	if errors.Is(err, gmail.ErrMessageNotFound) {
		return model.Email{}, email.ErrNotFound
	}
	if err != nil {
		return model.Email{}, fmt.Errorf("fetch %s: %w", id, err)
	}

	e := toEmail(m, uc.now())
	if err := uc.repo.Upsert(ctx, e); err != nil {
		return model.Email{}, fmt.Errorf("archive %s: %w", id, err)
	}
	return e, nil
}

func toEmail(m gmail.Message, now time.Time) model.Email {
	e := model.Email{
		ID:        m.ID,
		ThreadID:  m.ThreadID,
		Sender:    m.Sender,
		Subject:   m.Subject,
		Body:      m.Body,
		IsUnread:  m.Unread,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if !m.ReceivedAt.IsZero() {
		received := m.ReceivedAt
		e.ReceivedAt = &received
	}
	return e
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return min(limit, maxListLimit)
}
