package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"personal-assistant/internal/message"
	"personal-assistant/internal/message/repository"
	"personal-assistant/internal/model"
)

const maxListLimit = 200

func (uc *implUseCase) Record(ctx context.Context, input message.RecordInput) (model.Message, error) {
	if strings.TrimSpace(input.Text) == "" {
		return model.Message{}, message.ErrEmptyText
	}

	msg := model.Message{
		ID:                uuid.NewString(),
		TelegramMessageID: input.TelegramMessageID,
		ChatID:            input.ChatID,
		UserID:            input.UserID,
		Username:          input.Username,
		Text:              input.Text,
		IsCommand:         input.Command != "",
		Command:           input.Command,
		Action:            input.Action,
		Response:          input.Response,
		CreatedAt:         uc.now(),
	}
	if err := uc.repo.Create(ctx, msg); err != nil {
		uc.l.Errorf(ctx, "message.usecase.Record: %v", err)
		return model.Message{}, fmt.Errorf("record message: %w", err)
	}
	return msg, nil
}

func (uc *implUseCase) List(ctx context.Context, input message.ListInput) ([]model.Message, error) {
	limit := input.Limit
	if limit > maxListLimit {
		limit = maxListLimit
	}
	msgs, err := uc.repo.List(ctx, repository.ListOptions{ChatID: input.ChatID, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

func (uc *implUseCase) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, nil
	}
	n, err := uc.repo.DeleteBefore(ctx, uc.now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("prune messages: %w", err)
	}
	if n > 0 {
		uc.l.Infof(ctx, "message.usecase.Prune: removed %d messages older than %s", n, olderThan)
	}
	return n, nil
}
