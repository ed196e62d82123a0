package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"personal-assistant/internal/email/repository"
	"personal-assistant/internal/model"
)

const (
	defaultListLimit = 20

	emailColumns = `id, thread_id, sender, subject, body, summary, is_unread, received_at, created_at, updated_at`
)

type scanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) Upsert(ctx context.Context, e model.Email) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO emails (`+emailColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			thread_id   = excluded.thread_id,
			sender      = excluded.sender,
			subject     = excluded.subject,
			body        = excluded.body,
			summary     = CASE WHEN excluded.summary = '' THEN emails.summary ELSE excluded.summary END,
			is_unread   = excluded.is_unread,
			received_at = COALESCE(excluded.received_at, emails.received_at),
			updated_at  = excluded.updated_at
	`, e.ID, e.ThreadID, e.Sender, e.Subject, e.Body, e.Summary, e.IsUnread,
		nullTime(e.ReceivedAt), e.CreatedAt.UTC(), e.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert email: %w", err)
	}
	return nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Email, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+emailColumns+` FROM emails WHERE id = ?`, id)
	e, err := scanEmail(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Email{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Email{}, fmt.Errorf("failed to get email: %w", err)
	}
	return e, nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Email, error) {
	if opt.Limit <= 0 {
		opt.Limit = defaultListLimit
	}

	query := `SELECT ` + emailColumns + ` FROM emails`
	if opt.UnreadOnly {
		query += ` WHERE is_unread = 1`
	}
	query += ` ORDER BY COALESCE(received_at, created_at) DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, opt.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query emails: %w", err)
	}
	defer rows.Close()

	var out []model.Email
	for rows.Next() {
		e, err := scanEmail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan email: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating emails: %w", err)
	}
	return out, nil
}

func (r *implRepository) MarkRead(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE emails SET is_unread = 0, updated_at = ? WHERE id = ?`, at.UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to mark email read: %w", err)
	}
	return requireRow(res)
}

func (r *implRepository) SetSummary(ctx context.Context, id, summary string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE emails SET summary = ?, updated_at = ? WHERE id = ?`, summary, at.UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to store email summary: %w", err)
	}
	return requireRow(res)
}

func scanEmail(s scanner) (model.Email, error) {
	var (
		e        model.Email
		received sql.NullTime
	)
	err := s.Scan(
		&e.ID, &e.ThreadID, &e.Sender, &e.Subject, &e.Body, &e.Summary, &e.IsUnread,
		&received, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return model.Email{}, err
	}
	if received.Valid {
		v := received.Time
		e.ReceivedAt = &v
	}
	return e, nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
