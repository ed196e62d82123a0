package usecase

import (
	"time"

	"personal-assistant/internal/assistant"
	pkgLog "personal-assistant/pkg/log"
)

const defaultEmailPageSize = 5

// Options holds the tunables of the use case.
type Options struct {
	// EmailPageSize is how many unread messages read_emails lists.
	EmailPageSize int
	// Location is used for the daily summary date and greeting. Defaults to UTC.
	Location *time.Location
	// Archive, when set, stores every batch of unread mail that is fetched.
	Archive assistant.EmailArchive
}

type implUseCase struct {
	l          pkgLog.Logger
	classifier assistant.Classifier
	quotes     assistant.QuoteProvider
	weather    assistant.WeatherProvider
	clock      assistant.ClockProvider
	mail       assistant.MailProvider
	qa         assistant.QAProvider
	tasks      assistant.PendingTaskCounter
	archive    assistant.EmailArchive
	pageSize   int
	loc        *time.Location
	now        func() time.Time
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase instance. tasks may be nil, in which case the
// daily summary omits the task line.
func New(
	l pkgLog.Logger,
	classifier assistant.Classifier,
	quotes assistant.QuoteProvider,
	weather assistant.WeatherProvider,
	clock assistant.ClockProvider,
	mail assistant.MailProvider,
	qa assistant.QAProvider,
	tasks assistant.PendingTaskCounter,
	opts Options,
) *implUseCase {
	if opts.EmailPageSize <= 0 {
		opts.EmailPageSize = defaultEmailPageSize
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &implUseCase{
		l:          l,
		classifier: classifier,
		quotes:     quotes,
		weather:    weather,
		clock:      clock,
		mail:       mail,
		qa:         qa,
		tasks:      tasks,
		archive:    opts.Archive,
		pageSize:   opts.EmailPageSize,
		loc:        opts.Location,
		now:        time.Now,
	}
}

// SetNow overrides the clock used by the daily summary.
func (uc *implUseCase) SetNow(now func() time.Time) {
	uc.now = now
}
