package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"personal-assistant/internal/assistant"
	"personal-assistant/pkg/gmail"
)

// DailySummary never fails: sources that cannot be read are reported inline.
func (uc *implUseCase) DailySummary(ctx context.Context) string {
	now := uc.now().In(uc.loc)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n📋 <b>Daily Summary</b>\n📅 %s\n\n", greeting(now), now.Format("Monday, January 02, 2006"))

	count, err := uc.mail.UnreadCount(ctx)
	switch {
	case errors.Is(err, gmail.ErrNotConfigured):
		b.WriteString("📧 Email: not configured\n")
	case err != nil:
		uc.l.Warnf(ctx, "%s: unread count: %v", LogPrefixSummary, err)
		b.WriteString("📧 Email: unavailable\n")
	default:
		fmt.Fprintf(&b, "📧 Unread emails: %d\n", count)
		if count > 0 {
			if senders := uc.topSenders(ctx); len(senders) > 0 {
				fmt.Fprintf(&b, "   From: %s\n", escape(strings.Join(senders, ", ")))
			}
		}
	}

	if uc.tasks != nil {
		pending, err := uc.tasks.CountPending(ctx)
		if err != nil {
			uc.l.Warnf(ctx, "%s: pending tasks: %v", LogPrefixSummary, err)
			b.WriteString("⏳ Pending tasks: unavailable\n")
		} else {
			fmt.Fprintf(&b, "⏳ Pending tasks: %d\n", pending)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// topSenders returns the first distinct sender names of recent unread mail.
func (uc *implUseCase) topSenders(ctx context.Context) []string {
	msgs, err := uc.mail.GetUnread(ctx, topSenderSample)
	if err != nil {
		uc.l.Warnf(ctx, "%s: unread messages: %v", LogPrefixSummary, err)
		return nil
	}

	seen := make(map[string]bool)
	var out []string
	for _, m := range msgs {
		name := senderName(m.Sender)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
		if len(out) == topSenderCount {
			break
		}
	}
	return out
}

// EmailDigest lists up to limit unread messages with a preview of each.
func (uc *implUseCase) EmailDigest(ctx context.Context, limit int) (assistant.EmailDigestOutput, error) {
	msgs, err := uc.UnreadEmails(ctx, limit)
	if err != nil {
		return assistant.EmailDigestOutput{}, err
	}
	return assistant.EmailDigestOutput{Count: len(msgs), Text: FormatEmailDigest(msgs)}, nil
}

func greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "🌅 Good morning!"
	case h < 18:
		return "☀️ Good afternoon!"
	default:
		return "🌙 Good evening!"
	}
}

// senderName turns `"Alice Smith" <alice@example.com>` into `Alice Smith`.
func senderName(from string) string {
	from = strings.TrimSpace(from)
	if i := strings.Index(from, "<"); i > 0 {
		from = strings.TrimSpace(from[:i])
	}
	return strings.Trim(from, `"`)
}
