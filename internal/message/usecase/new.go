package usecase

import (
	"time"

	"personal-assistant/internal/message"
	"personal-assistant/internal/message/repository"
	pkgLog "personal-assistant/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	now  func() time.Time
}

var _ message.UseCase = (*implUseCase)(nil)

// New creates a new message UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{l: l, repo: repo, now: time.Now}
}
