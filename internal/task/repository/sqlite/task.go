package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"personal-assistant/internal/model"
	"personal-assistant/internal/task/repository"
)

const (
	defaultListLimit = 20

	taskColumns = `id, name, description, command, chat_id, status, scheduled_time, result, error_message, created_at, updated_at, completed_at`
)

type scanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) Create(ctx context.Context, t model.Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.Name, t.Description, t.Command, t.ChatID, string(t.Status), nullTime(t.ScheduledTime),
		t.Result, t.ErrorMessage, t.CreatedAt.UTC(), t.UpdatedAt.UTC(), nullTime(t.CompletedAt))
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	if opt.Limit <= 0 {
		opt.Limit = defaultListLimit
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	args := []any{}
	if opt.Status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(opt.Status))
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, opt.Limit)

	return r.query(ctx, query, args...)
}

func (r *implRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]model.Task, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return r.query(ctx, `
		SELECT `+taskColumns+` FROM tasks
		WHERE status = ? AND (scheduled_time IS NULL OR scheduled_time <= ?)
		ORDER BY created_at ASC
		LIMIT ?
	`, string(model.TaskStatusPending), now.UTC(), limit)
}

func (r *implRepository) Update(ctx context.Context, t model.Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET name = ?, description = ?, command = ?, chat_id = ?, status = ?, scheduled_time = ?,
		    result = ?, error_message = ?, updated_at = ?, completed_at = ?
		WHERE id = ?
	`, t.Name, t.Description, t.Command, t.ChatID, string(t.Status), nullTime(t.ScheduledTime),
		t.Result, t.ErrorMessage, t.UpdatedAt.UTC(), nullTime(t.CompletedAt), t.ID)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return requireRow(res)
}

func (r *implRepository) Claim(ctx context.Context, id string, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET status = ?, updated_at = ? WHERE id = ? AND status = ?
	`, string(model.TaskStatusRunning), now.UTC(), id, string(model.TaskStatusPending))
	if err != nil {
		return false, fmt.Errorf("failed to claim task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to claim task: %w", err)
	}
	return n == 1, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return requireRow(res)
}

func (r *implRepository) Count(ctx context.Context, status model.TaskStatus) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE status = ?`, string(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return n, nil
}

func (r *implRepository) query(ctx context.Context, query string, args ...any) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var out []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}
	return out, nil
}

func scanTask(s scanner) (model.Task, error) {
	var (
		t         model.Task
		status    string
		scheduled sql.NullTime
		completed sql.NullTime
	)
	err := s.Scan(
		&t.ID, &t.Name, &t.Description, &t.Command, &t.ChatID, &status, &scheduled,
		&t.Result, &t.ErrorMessage, &t.CreatedAt, &t.UpdatedAt, &completed,
	)
	if err != nil {
		return model.Task{}, err
	}
	t.Status = model.TaskStatus(status)
	if scheduled.Valid {
		v := scheduled.Time
		t.ScheduledTime = &v
	}
	if completed.Valid {
		v := completed.Time
		t.CompletedAt = &v
	}
	return t, nil
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
