package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"personal-assistant/internal/model"
	"personal-assistant/internal/task"
	"personal-assistant/internal/task/repository"
)

func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Task{}, task.ErrEmptyName
	}
	command := strings.TrimSpace(input.Command)
	if command == "" {
		return model.Task{}, task.ErrEmptyCommand
	}

	now := uc.now()
	t := model.Task{
		ID:            uuid.NewString(),
		Name:          name,
		Description:   strings.TrimSpace(input.Description),
		Command:       command,
		ChatID:        input.ChatID,
		Status:        model.TaskStatusPending,
		ScheduledTime: input.ScheduledTime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: %v", err)
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	uc.l.Infof(ctx, "task.usecase.Create: created %s (%s)", t.ID, t.Name)
	return t, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.Get(ctx, id)
	if err != nil {
		return model.Task{}, mapRepoErr(err)
	}
	return t, nil
}

func (uc *implUseCase) List(ctx context.Context, input task.ListInput) ([]model.Task, error) {
	if input.Status != "" && !input.Status.Valid() {
		return nil, task.ErrInvalidStatus
	}
	limit := input.Limit
	if limit > maxListLimit {
		limit = maxListLimit
	}
	tasks, err := uc.repo.List(ctx, repository.ListOptions{Status: input.Status, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (uc *implUseCase) Cancel(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.Get(ctx, id)
	if err != nil {
		return model.Task{}, mapRepoErr(err)
	}
	if t.Status != model.TaskStatusPending {
		return model.Task{}, task.ErrNotPending
	}

	t.Status = model.TaskStatusCancelled
	t.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, t); err != nil {
		return model.Task{}, mapRepoErr(err)
	}
	return t, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	t, err := uc.repo.Get(ctx, id)
	if err != nil {
		return mapRepoErr(err)
	}
	if t.Status == model.TaskStatusRunning {
		return task.ErrTaskRunning
	}
	return mapRepoErr(uc.repo.Delete(ctx, id))
}

func (uc *implUseCase) CountPending(ctx context.Context) (int, error) {
	return uc.repo.Count(ctx, model.TaskStatusPending)
}

func mapRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrNotFound
	}
	return err
}
