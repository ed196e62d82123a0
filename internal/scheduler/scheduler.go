package scheduler

import (
	"context"
	"fmt"
	"time"

	"personal-assistant/internal/metrics"
)

// Start launches every job. Jobs stop when ctx is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return ErrAlreadyStarted
	}

	ctx, s.cancel = context.WithCancel(ctx)
	now := s.now()
	for _, j := range s.jobs {
		j.next = j.nextAfter(now, s.loc)
		s.l.Infof(ctx, "scheduler.Start: %s (%s %s) next run %s", j.name, j.kind, j.schedule(), j.next.In(s.loc).Format(time.RFC3339))

		s.wg.Add(1)
		go s.loop(ctx, j)
	}
	return nil
}

// Stop cancels every job and waits for running ones to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// Jobs returns a snapshot of every job in registration order.
func (s *Scheduler) Jobs() []JobInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]JobInfo, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j.info())
	}
	return out
}

// RunNow runs the named job immediately and returns its error. The regular schedule
// is left untouched and paused jobs run too.
func (s *Scheduler) RunNow(ctx context.Context, name string) error {
	s.mu.Lock()
	_, target := s.find(name)
	s.mu.Unlock()

	if target == nil {
		return ErrJobNotFound
	}
	return s.execute(ctx, target)
}

// Pause keeps the named job registered but skips its scheduled runs until Resume.
func (s *Scheduler) Pause(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, j := s.find(name)
	if j == nil {
		return ErrJobNotFound
	}
	j.paused = true
	s.l.Infof(context.Background(), "scheduler.Pause: %s paused", name)
	return nil
}

// Resume re-enables a paused job. Its next run is computed from the current time.
func (s *Scheduler) Resume(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, j := s.find(name)
	if j == nil {
		return ErrJobNotFound
	}
	if !j.paused {
		return nil
	}
	j.paused = false
	j.next = j.nextAfter(s.now(), s.loc)
	j.signal()
	s.l.Infof(context.Background(), "scheduler.Resume: %s next run %s", name, j.next.In(s.loc).Format(time.RFC3339))
	return nil
}

// Remove unschedules the named job. A run already in progress is allowed to finish.
func (s *Scheduler) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, j := s.find(name)
	if j == nil {
		return ErrJobNotFound
	}
	s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
	j.removed = true
	j.signal()
	s.l.Infof(context.Background(), "scheduler.Remove: %s removed", name)
	return nil
}

// find must be called with s.mu held.
func (s *Scheduler) find(name string) (int, *job) {
	for i, j := range s.jobs {
		if j.name == name {
			return i, j
		}
	}
	return -1, nil
}

func (s *Scheduler) loop(ctx context.Context, j *job) {
	defer s.wg.Done()

	for {
		s.mu.Lock()
		if j.removed {
			s.mu.Unlock()
			return
		}
		wait := j.next.Sub(s.now())
		s.mu.Unlock()

		timer := time.NewTimer(max(wait, 0))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-j.wake:
			timer.Stop()
			continue
		case <-timer.C:
		}

		s.mu.Lock()
		skip := j.paused || j.removed
		s.mu.Unlock()

		if !skip {
			if err := s.execute(ctx, j); err != nil && ctx.Err() == nil {
				s.l.Warnf(ctx, "scheduler.loop: %s: %v", j.name, err)
			}
		}

		s.mu.Lock()
		j.next = j.nextAfter(s.now(), s.loc)
		s.mu.Unlock()
	}
}

// execute runs j once. Overlapping runs of the same job are refused.
func (s *Scheduler) execute(ctx context.Context, j *job) (err error) {
	s.mu.Lock()
	if j.running {
		s.mu.Unlock()
		return ErrJobRunning
	}
	j.running = true
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scheduler: %s panicked: %v", j.name, r)
		}

		outcome := metrics.OutcomeSuccess
		s.mu.Lock()
		j.running = false
		j.last = s.now()
		j.runs++
		j.lastErr = ""
		if err != nil {
			j.lastErr = err.Error()
			outcome = metrics.OutcomeFailure
		}
		s.mu.Unlock()

		metrics.RecordSchedulerRun(j.name, outcome)
	}()

	return j.run(ctx)
}
