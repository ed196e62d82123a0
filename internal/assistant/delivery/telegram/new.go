package telegram

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/message"
	"personal-assistant/internal/task"
	pkgLog "personal-assistant/pkg/log"
)

const (
	defaultProcessTimeout = 90 * time.Second
	digestLimit           = 3
	pendingTasksLimit     = 5
)

// Handler is the interface for the Telegram webhook handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
	// Wait blocks until every update accepted so far has been processed.
	Wait()
}

// Limiter throttles chats that send too many messages.
type Limiter interface {
	Allow(chatID int64) bool
}

// Config tunes background processing of updates.
type Config struct {
	ProcessTimeout time.Duration
}

type handler struct {
	l        pkgLog.Logger
	uc       assistant.UseCase
	tasks    task.UseCase
	messages message.UseCase
	bot      assistant.ChatTransport
	limiter  Limiter
	timeout  time.Duration
	inflight sync.WaitGroup
}

// New creates the Telegram webhook handler.
func New(
	l pkgLog.Logger,
	uc assistant.UseCase,
	tasks task.UseCase,
	messages message.UseCase,
	bot assistant.ChatTransport,
	limiter Limiter,
	cfg Config,
) *handler {
	if cfg.ProcessTimeout <= 0 {
		cfg.ProcessTimeout = defaultProcessTimeout
	}
	return &handler{
		l:        l,
		uc:       uc,
		tasks:    tasks,
		messages: messages,
		bot:      bot,
		limiter:  limiter,
		timeout:  cfg.ProcessTimeout,
	}
}
