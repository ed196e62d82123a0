package scheduler

import (
	"context"
	"time"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/task"
)

// Kind tells how a job is triggered.
type Kind string

const (
	KindDaily    Kind = "daily"
	KindInterval Kind = "interval"
)

// Job names.
const (
	JobMorningSummary = "morning_summary"
	JobEveningSummary = "evening_summary"
	JobEmailCheck     = "email_check"
	JobTaskProcessing = "task_processing"
	JobCleanup        = "message_cleanup"
)

// JobInfo is a snapshot of one job.
type JobInfo struct {
	Name      string     `json:"name"`
	Kind      Kind       `json:"kind"`
	Schedule  string     `json:"schedule"` // "08:00" for daily jobs, a duration for interval jobs
	NextRun   time.Time  `json:"next_run"`
	LastRun   *time.Time `json:"last_run,omitempty"`
	LastError string     `json:"last_error,omitempty"`
	Runs      int        `json:"runs"`
	Paused    bool       `json:"paused"`
}

// Config selects the jobs and their timing.
type Config struct {
	Location           *time.Location
	MorningSummaryTime string // HH:MM
	EveningSummaryTime string // HH:MM
	EmailCheckInterval time.Duration
	TaskCheckInterval  time.Duration
	EmailEnabled       bool
	MessageRetention   time.Duration // 0 disables the cleanup job
	ChatID             int64         // Where summaries and email alerts go
}

// Summarizer builds the summary and email digest texts.
type Summarizer interface {
	DailySummary(ctx context.Context) string
	EmailDigest(ctx context.Context, limit int) (assistant.EmailDigestOutput, error)
}

// TaskProcessor runs due tasks.
type TaskProcessor interface {
	ProcessPending(ctx context.Context) (task.ProcessOutput, error)
}

// MessagePruner drops old chat history.
type MessagePruner interface {
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Deps are the collaborators the jobs drive. A nil TaskProcessor or MessagePruner
// leaves the matching job out.
type Deps struct {
	Assistant Summarizer
	Tasks     TaskProcessor
	Messages  MessagePruner
	Notifier  assistant.ChatTransport
}
