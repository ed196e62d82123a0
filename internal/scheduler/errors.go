package scheduler

import "errors"

var (
	ErrJobNotFound    = errors.New("scheduler: job not found")
	ErrJobRunning     = errors.New("scheduler: job is already running")
	ErrNoChat         = errors.New("scheduler: no chat to deliver to")
	ErrNotDelivered   = errors.New("scheduler: message was not delivered")
	ErrAlreadyStarted = errors.New("scheduler: already started")
)
