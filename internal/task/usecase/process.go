package usecase

import (
	"context"
	"fmt"
	"html"

	"personal-assistant/internal/model"
	"personal-assistant/internal/task"
)

// ProcessPending runs due tasks one at a time. A task is claimed before it runs, so a
// task is never executed twice even if two passes overlap.
func (uc *implUseCase) ProcessPending(ctx context.Context) (task.ProcessOutput, error) {
	var out task.ProcessOutput

	due, err := uc.repo.ListDue(ctx, uc.now(), processBatchSize)
	if err != nil {
		return out, fmt.Errorf("list due tasks: %w", err)
	}

	for _, t := range due {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		claimed, err := uc.repo.Claim(ctx, t.ID, uc.now())
		if err != nil {
			uc.l.Errorf(ctx, "task.usecase.ProcessPending: claim %s: %v", t.ID, err)
			out.Failed++
			continue
		}
		if !claimed {
			continue
		}

		if uc.run(ctx, t) {
			out.Processed++
		} else {
			out.Failed++
		}
	}

	if len(due) > 0 {
		uc.l.Infof(ctx, "task.usecase.ProcessPending: processed=%d failed=%d", out.Processed, out.Failed)
	}
	return out, nil
}

// run executes one claimed task and stores its outcome.
func (uc *implUseCase) run(ctx context.Context, t model.Task) bool {
	uc.l.Infof(ctx, "task.usecase.ProcessPending: running %s (%s)", t.ID, t.Name)

	reply := uc.responder.Respond(ctx, t.Command)

	chatID := t.ChatID
	if chatID == 0 {
		chatID = uc.defaultChatID
	}

	now := uc.now()
	t.Result = reply
	t.UpdatedAt = now
	t.CompletedAt = &now
	t.Status = model.TaskStatusCompleted
	t.ErrorMessage = ""

	switch {
	case chatID == 0:
		t.Status = model.TaskStatusFailed
		t.ErrorMessage = "no chat to deliver the result to"
	case !uc.notifier.Send(ctx, chatID, fmt.Sprintf("📋 <b>%s</b>\n\n%s", html.EscapeString(t.Name), reply)):
		t.Status = model.TaskStatusFailed
		t.ErrorMessage = "failed to deliver the result"
	}

	if err := uc.repo.Update(ctx, t); err != nil {
		uc.l.Errorf(ctx, "task.usecase.ProcessPending: update %s: %v", t.ID, err)
		return false
	}
	return t.Status == model.TaskStatusCompleted
}
