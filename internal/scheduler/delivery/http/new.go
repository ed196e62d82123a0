package http

import (
	"context"

	"personal-assistant/internal/scheduler"
	"personal-assistant/pkg/log"
)

// Runner is the part of the scheduler exposed over HTTP.
type Runner interface {
	Jobs() []scheduler.JobInfo
	RunNow(ctx context.Context, name string) error
	Pause(name string) error
	Resume(name string) error
	Remove(name string) error
}

type handler struct {
	l     log.Logger
	sched Runner
}

// New creates the HTTP handler for scheduler jobs.
func New(l log.Logger, sched Runner) *handler {
	return &handler{l: l, sched: sched}
}
