package http

import (
	"time"

	"personal-assistant/internal/model"
	"personal-assistant/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Name          string `json:"name"           binding:"required,max=255"`
	Description   string `json:"description"    binding:"max=1000"`
	Command       string `json:"command"        binding:"required"`
	ChatID        int64  `json:"chat_id"`
	ScheduledTime string `json:"scheduled_time"` // RFC3339 or relative ("in 2 hours"); empty runs on the next pass
}

func (r createReq) toInput(at *time.Time) task.CreateInput {
	return task.CreateInput{
		Name:          r.Name,
		Description:   r.Description,
		Command:       r.Command,
		ChatID:        r.ChatID,
		ScheduledTime: at,
	}
}

type listReq struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Status: model.TaskStatus(r.Status),
		Limit:  r.Limit,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Command       string     `json:"command"`
	ChatID        int64      `json:"chat_id,omitempty"`
	Status        string     `json:"status"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	Result        string     `json:"result,omitempty"`
	ErrorMessage  string     `json:"error_message,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:            t.ID,
		Name:          t.Name,
		Description:   t.Description,
		Command:       t.Command,
		ChatID:        t.ChatID,
		Status:        string(t.Status),
		ScheduledTime: t.ScheduledTime,
		Result:        t.Result,
		ErrorMessage:  t.ErrorMessage,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
		CompletedAt:   t.CompletedAt,
	}
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	resp := listResp{Tasks: make([]taskResp, 0, len(tasks)), Total: len(tasks)}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, h.newTaskResp(t))
	}
	return resp
}
