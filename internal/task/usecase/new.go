package usecase

import (
	"time"

	"personal-assistant/internal/task"
	"personal-assistant/internal/task/repository"
	pkgLog "personal-assistant/pkg/log"
)

const (
	maxListLimit     = 100
	processBatchSize = 20
)

type implUseCase struct {
	l             pkgLog.Logger
	repo          repository.Repository
	responder     task.Responder
	notifier      task.Notifier
	defaultChatID int64
	now           func() time.Time
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance. Replies of tasks without a chat go to
// defaultChatID.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	responder task.Responder,
	notifier task.Notifier,
	defaultChatID int64,
) *implUseCase {
	return &implUseCase{
		l:             l,
		repo:          repo,
		responder:     responder,
		notifier:      notifier,
		defaultChatID: defaultChatID,
		now:           time.Now,
	}
}

// SetNow overrides the clock.
func (uc *implUseCase) SetNow(now func() time.Time) {
	uc.now = now
}
