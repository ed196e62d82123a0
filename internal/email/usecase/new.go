package usecase

import (
	"time"

	"personal-assistant/internal/email"
	"personal-assistant/internal/email/repository"
	pkgLog "personal-assistant/pkg/log"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	mailbox    email.Mailbox
	summarizer email.Summarizer
	now        func() time.Time
}

var _ email.UseCase = (*implUseCase)(nil)

// New creates a new email UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, mailbox email.Mailbox, summarizer email.Summarizer) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		mailbox:    mailbox,
		summarizer: summarizer,
		now:        time.Now,
	}
}

// SetNow overrides the clock.
func (uc *implUseCase) SetNow(now func() time.Time) {
	uc.now = now
}
