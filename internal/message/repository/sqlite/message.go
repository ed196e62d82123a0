package sqlite

import (
	"context"
	"fmt"
	"time"

	"personal-assistant/internal/message/repository"
	"personal-assistant/internal/model"
)

const defaultListLimit = 20

func (r *implRepository) Create(ctx context.Context, msg model.Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (id, telegram_message_id, chat_id, user_id, username, text, is_command, command, action, response, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, msg.ID, msg.TelegramMessageID, msg.ChatID, msg.UserID, msg.Username, msg.Text,
		msg.IsCommand, msg.Command, msg.Action, msg.Response, msg.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Message, error) {
	if opt.Limit <= 0 {
		opt.Limit = defaultListLimit
	}

	query := `
		SELECT id, telegram_message_id, chat_id, user_id, username, text, is_command, command, action, response, created_at
		FROM messages`
	args := []any{}
	if opt.ChatID != 0 {
		query += ` WHERE chat_id = ?`
		args = append(args, opt.ChatID)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, opt.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var out []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(
			&m.ID, &m.TelegramMessageID, &m.ChatID, &m.UserID, &m.Username, &m.Text,
			&m.IsCommand, &m.Command, &m.Action, &m.Response, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}
	return out, nil
}

func (r *implRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE created_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete messages: %w", err)
	}
	return res.RowsAffected()
}
