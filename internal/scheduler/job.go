package scheduler

import (
	"context"
	"fmt"
	"time"
)

type job struct {
	name   string
	kind   Kind
	hour   int
	minute int
	every  time.Duration
	run    func(ctx context.Context) error

	next    time.Time
	last    time.Time
	lastErr string
	runs    int
	running bool
	paused  bool
	removed bool

	// wake interrupts the loop's wait after the schedule changed.
	wake chan struct{}
}

func dailyJob(name, hhmm string, run func(ctx context.Context) error) (*job, error) {
	at, err := time.Parse("15:04", hhmm)
	if err != nil {
		return nil, fmt.Errorf("scheduler: %s time %q must be HH:MM", name, hhmm)
	}
	return &job{name: name, kind: KindDaily, hour: at.Hour(), minute: at.Minute(), run: run, wake: make(chan struct{}, 1)}, nil
}

func intervalJob(name string, every time.Duration, run func(ctx context.Context) error) (*job, error) {
	if every <= 0 {
		return nil, fmt.Errorf("scheduler: %s interval must be positive", name)
	}
	return &job{name: name, kind: KindInterval, every: every, run: run, wake: make(chan struct{}, 1)}, nil
}

// nextAfter returns the first run strictly after t.
func (j *job) nextAfter(t time.Time, loc *time.Location) time.Time {
	if j.kind == KindInterval {
		return t.Add(j.every)
	}
	lt := t.In(loc)
	next := time.Date(lt.Year(), lt.Month(), lt.Day(), j.hour, j.minute, 0, 0, loc)
	if !next.After(lt) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (j *job) signal() {
	select {
	case j.wake <- struct{}{}:
	default:
	}
}

func (j *job) schedule() string {
	if j.kind == KindInterval {
		return j.every.String()
	}
	return fmt.Sprintf("%02d:%02d", j.hour, j.minute)
}

func (j *job) info() JobInfo {
	info := JobInfo{
		Name:      j.name,
		Kind:      j.kind,
		Schedule:  j.schedule(),
		NextRun:   j.next,
		LastError: j.lastErr,
		Runs:      j.runs,
		Paused:    j.paused,
	}
	if !j.last.IsZero() {
		last := j.last
		info.LastRun = &last
	}
	return info
}
