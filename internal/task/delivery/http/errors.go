package http

import (
	"errors"
	"net/http"

	"personal-assistant/internal/task"
	pkgErrors "personal-assistant/pkg/errors"
)

var (
	errInvalidID            = pkgErrors.NewHTTPError(http.StatusBadRequest, "task id is required")
	errInvalidScheduledTime = pkgErrors.NewHTTPError(http.StatusBadRequest, "scheduled_time must be RFC3339 or a relative time such as \"in 2 hours\"")
)

// mapError translates task use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, task.ErrEmptyName):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "task name is required")
	case errors.Is(err, task.ErrEmptyCommand):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "task command is required")
	case errors.Is(err, task.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid task status")
	case errors.Is(err, task.ErrNotPending):
		return pkgErrors.NewHTTPError(http.StatusConflict, "task is not pending")
	case errors.Is(err, task.ErrTaskRunning):
		return pkgErrors.NewHTTPError(http.StatusConflict, "task is running")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
