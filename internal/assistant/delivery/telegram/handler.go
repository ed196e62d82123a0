package telegram

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/message"
	"personal-assistant/internal/metrics"
	"personal-assistant/internal/model"
	"personal-assistant/internal/task"
	"personal-assistant/pkg/gmail"
	pkgLog "personal-assistant/pkg/log"
	pkgResponse "personal-assistant/pkg/response"
	pkgTelegram "personal-assistant/pkg/telegram"
)

// HandleWebhook acknowledges a Telegram update right away and processes it in the
// background, detached from the request context. Updates that cannot be parsed are
// acknowledged too, otherwise Telegram keeps redelivering them.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Warnf(ctx, "telegram.HandleWebhook: failed to parse update: %v", err)
		metrics.RecordWebhookUpdate(metrics.KindIgnored)
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	if msg == nil || msg.Chat == nil || strings.TrimSpace(msg.Text) == "" {
		metrics.RecordWebhookUpdate(metrics.KindIgnored)
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	reqID := pkgLog.RequestID(ctx)
	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()

		bgCtx, cancel := context.WithTimeout(context.Background(), h.timeout)
		defer cancel()
		bgCtx = pkgLog.WithChatID(pkgLog.WithRequestID(bgCtx, reqID), msg.Chat.ID)

		h.processMessage(bgCtx, msg)
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) Wait() {
	h.inflight.Wait()
}

// processMessage answers one message and records the exchange.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) {
	defer func() {
		if r := recover(); r != nil {
			h.l.Errorf(ctx, "telegram.processMessage: panic: %v", r)
		}
	}()

	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	if h.limiter != nil && !h.limiter.Allow(chatID) {
		metrics.RecordWebhookUpdate(metrics.KindRateLimited)
		h.l.Warnf(ctx, "telegram.processMessage: chat %d rate limited", chatID)
		h.bot.Send(ctx, chatID, MsgSlowDown)
		return
	}

	input := message.RecordInput{
		TelegramMessageID: msg.MessageID,
		ChatID:            chatID,
		Text:              text,
	}
	if msg.From != nil {
		input.UserID = msg.From.ID
		input.Username = msg.From.Username
	}

	if cmd, ok := parseCommand(text); ok {
		metrics.RecordWebhookUpdate(metrics.KindCommand)
		input.Command = cmd
		input.Response = h.handleCommand(ctx, cmd)
	} else {
		metrics.RecordWebhookUpdate(metrics.KindMessage)
		intent := h.uc.Classify(ctx, text)
		input.Action = string(intent.Action)
		input.Response = h.uc.Dispatch(ctx, text, intent)
	}

	if !h.bot.Send(ctx, chatID, input.Response) {
		h.l.Warnf(ctx, "telegram.processMessage: reply to chat %d was not delivered", chatID)
	}

	if h.messages != nil {
		if _, err := h.messages.Record(ctx, input); err != nil {
			h.l.Errorf(ctx, "telegram.processMessage: record: %v", err)
		}
	}
}

func (h *handler) handleCommand(ctx context.Context, cmd string) string {
	switch cmd {
	case cmdStart:
		return MsgWelcome
	case cmdHelp:
		return MsgCommands
	case cmdEmails:
		return h.emailsCommand(ctx)
	case cmdTasks:
		return h.tasksCommand(ctx)
	case cmdSummary:
		return h.uc.DailySummary(ctx)
	default:
		return fmt.Sprintf(MsgUnknownCommand, html.EscapeString(cmd))
	}
}

func (h *handler) emailsCommand(ctx context.Context) string {
	digest, err := h.uc.EmailDigest(ctx, digestLimit)
	switch {
	case errors.Is(err, gmail.ErrNotConfigured):
		return MsgMailNotConfigured
	case err != nil:
		h.l.Errorf(ctx, "telegram.emailsCommand: %v", err)
		return MsgEmailsUnavailable
	case digest.Count == 0:
		return MsgNoUnread
	}
	return digest.Text
}

func (h *handler) tasksCommand(ctx context.Context) string {
	pending, err := h.tasks.List(ctx, task.ListInput{Status: model.TaskStatusPending, Limit: pendingTasksLimit})
	if err != nil {
		h.l.Errorf(ctx, "telegram.tasksCommand: %v", err)
		return MsgTasksUnavailable
	}
	if len(pending) == 0 {
		return MsgNoPendingTasks
	}

	var b strings.Builder
	b.WriteString(MsgPendingTasksHeader)
	for _, t := range pending {
		b.WriteString("• ")
		b.WriteString(html.EscapeString(t.Name))
		if t.ScheduledTime != nil {
			b.WriteString(" (")
			b.WriteString(t.ScheduledTime.Format("Jan 2 15:04"))
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// parseCommand extracts "emails" from "/emails" or "/emails@my_bot extra".
func parseCommand(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	cmd := strings.Fields(text[1:])
	if len(cmd) == 0 {
		return "", false
	}
	name, _, _ := strings.Cut(cmd[0], "@")
	return strings.ToLower(name), name != ""
}
