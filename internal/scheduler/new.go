package scheduler

import (
	"context"
	"sync"
	"time"

	"personal-assistant/pkg/log"
)

const (
	cleanupTime     = "03:00"
	emailAlertLimit = 5
	jobRunTimeout   = 5 * time.Minute
)

// Scheduler runs the assistant's periodic jobs, one goroutine per job.
type Scheduler struct {
	l       log.Logger
	loc     *time.Location
	chatID  int64
	deps    Deps
	now     func() time.Time
	timeout time.Duration

	mu         sync.Mutex
	jobs       []*job
	lastDigest string
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// New builds the job table from cfg. The email check is only scheduled when mail is
// enabled.
func New(l log.Logger, cfg Config, deps Deps) (*Scheduler, error) {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	s := &Scheduler{
		l:       l,
		loc:     loc,
		chatID:  cfg.ChatID,
		deps:    deps,
		now:     time.Now,
		timeout: jobRunTimeout,
	}

	add := func(j *job, err error) error {
		if err != nil {
			return err
		}
		s.jobs = append(s.jobs, j)
		return nil
	}

	if deps.Assistant != nil {
		if err := add(dailyJob(JobMorningSummary, cfg.MorningSummaryTime, s.sendSummary)); err != nil {
			return nil, err
		}
		if err := add(dailyJob(JobEveningSummary, cfg.EveningSummaryTime, s.sendSummary)); err != nil {
			return nil, err
		}
		if cfg.EmailEnabled {
			if err := add(intervalJob(JobEmailCheck, cfg.EmailCheckInterval, s.checkEmails)); err != nil {
				return nil, err
			}
		}
	}
	if deps.Tasks != nil {
		if err := add(intervalJob(JobTaskProcessing, cfg.TaskCheckInterval, s.processTasks)); err != nil {
			return nil, err
		}
	}
	if deps.Messages != nil && cfg.MessageRetention > 0 {
		retention := cfg.MessageRetention
		if err := add(dailyJob(JobCleanup, cleanupTime, func(ctx context.Context) error {
			return s.pruneMessages(ctx, retention)
		})); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// SetNow replaces the clock used to compute run times.
func (s *Scheduler) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}
