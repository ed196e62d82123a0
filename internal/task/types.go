package task

import (
	"time"

	"personal-assistant/internal/model"
)

// CreateInput is the input of UseCase.Create.
type CreateInput struct {
	Name          string
	Description   string
	Command       string
	ChatID        int64
	ScheduledTime *time.Time
}

// ListInput is the input of UseCase.List.
type ListInput struct {
	Status model.TaskStatus // empty for all
	Limit  int
}

// ProcessOutput is the output of UseCase.ProcessPending.
type ProcessOutput struct {
	Processed int
	Failed    int
}
