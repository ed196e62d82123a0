package http

import (
	"time"

	"personal-assistant/internal/task"
	"personal-assistant/pkg/datemath"
	"personal-assistant/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    task.UseCase
	dates *datemath.Parser
	now   func() time.Time
}

// New creates the HTTP handler for scheduled tasks. Relative scheduled times are
// resolved by dates.
func New(l log.Logger, uc task.UseCase, dates *datemath.Parser) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
		now:   time.Now,
	}
}
