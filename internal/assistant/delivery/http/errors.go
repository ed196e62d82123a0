package http

import (
	"errors"
	"net/http"

	"personal-assistant/internal/assistant"
	pkgErrors "personal-assistant/pkg/errors"
	"personal-assistant/pkg/gmail"
)

var (
	errEmptyText           = pkgErrors.NewHTTPError(http.StatusBadRequest, "text is required")
	errNoChat              = pkgErrors.NewHTTPError(http.StatusBadRequest, "chat_id is required when no default chat is configured")
	errNoWebhookURL        = pkgErrors.NewHTTPError(http.StatusBadRequest, "webhook url is not configured")
	errBotNotConfigured    = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "telegram bot is not configured")
	errMailNotConfigured   = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "email service is not configured")
	errDeliveryFailed      = pkgErrors.NewHTTPError(http.StatusBadGateway, "telegram did not accept the message")
	errTelegramUnreachable = pkgErrors.NewHTTPError(http.StatusBadGateway, "telegram request failed")
)

// mapError translates assistant and mail errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, gmail.ErrNotConfigured):
		return errMailNotConfigured
	case errors.Is(err, assistant.ErrInvalidRecipient):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "recipient must be an email address")
	case errors.Is(err, assistant.ErrEmptyBody):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "body is required")
	case errors.Is(err, assistant.ErrSendRejected):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "mail provider rejected the message")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
