package http

import (
	"personal-assistant/internal/email"
	"personal-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc email.UseCase
}

// New creates the HTTP handler for the mailbox endpoints.
func New(l log.Logger, uc email.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
