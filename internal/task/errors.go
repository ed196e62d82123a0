package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyName     = errors.New("task name is empty")
	ErrEmptyCommand  = errors.New("task command is empty")
	ErrNotFound      = errors.New("task not found")
	ErrInvalidStatus = errors.New("invalid task status")
	ErrNotPending    = errors.New("task is not pending")
	ErrTaskRunning   = errors.New("task is running")
)
