package http

import (
	"errors"
	"net/http"

	"personal-assistant/internal/email"
	pkgErrors "personal-assistant/pkg/errors"
	"personal-assistant/pkg/gmail"
)

var (
	errInvalidID         = pkgErrors.NewHTTPError(http.StatusBadRequest, "email id is required")
	errMailNotConfigured = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "email service is not configured")
)

// mapError translates email use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, gmail.ErrNotConfigured):
		return errMailNotConfigured
	case errors.Is(err, email.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "email not found")
	case errors.Is(err, email.ErrEmptyID):
		return errInvalidID
	case errors.Is(err, email.ErrInvalidRecipient):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "recipient must be an email address")
	case errors.Is(err, email.ErrEmptyBody):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "body is required")
	case errors.Is(err, email.ErrInvalidLabel):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "unknown label")
	case errors.Is(err, email.ErrSummaryFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "summary could not be generated")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
