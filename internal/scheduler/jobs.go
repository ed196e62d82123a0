package scheduler

import (
	"context"
	"fmt"
	"time"
)

func (s *Scheduler) sendSummary(ctx context.Context) error {
	return s.deliver(ctx, s.deps.Assistant.DailySummary(ctx))
}

// checkEmails alerts about unread mail. The same digest is not sent twice in a row.
func (s *Scheduler) checkEmails(ctx context.Context) error {
	digest, err := s.deps.Assistant.EmailDigest(ctx, emailAlertLimit)
	if err != nil {
		return fmt.Errorf("email digest: %w", err)
	}

	s.mu.Lock()
	seen := digest.Text == s.lastDigest
	if digest.Count == 0 {
		s.lastDigest = ""
	}
	s.mu.Unlock()

	if digest.Count == 0 || seen {
		return nil
	}
	if err := s.deliver(ctx, digest.Text); err != nil {
		return err
	}

	s.mu.Lock()
	s.lastDigest = digest.Text
	s.mu.Unlock()
	return nil
}

func (s *Scheduler) processTasks(ctx context.Context) error {
	out, err := s.deps.Tasks.ProcessPending(ctx)
	if err != nil {
		return fmt.Errorf("process tasks: %w", err)
	}
	if out.Processed > 0 || out.Failed > 0 {
		s.l.Infof(ctx, "scheduler.processTasks: %d processed, %d failed", out.Processed, out.Failed)
	}
	return nil
}

func (s *Scheduler) pruneMessages(ctx context.Context, retention time.Duration) error {
	_, err := s.deps.Messages.Prune(ctx, retention)
	return err
}

func (s *Scheduler) deliver(ctx context.Context, text string) error {
	if s.chatID == 0 {
		return ErrNoChat
	}
	if s.deps.Notifier == nil || !s.deps.Notifier.Send(ctx, s.chatID, text) {
		return ErrNotDelivered
	}
	return nil
}
