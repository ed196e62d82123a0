package http

import (
	"context"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/message"
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/telegram"
)

// Bot is the part of the Telegram client the REST API drives.
type Bot interface {
	Configured() bool
	GetMe(ctx context.Context) (telegram.User, error)
	GetWebhookInfo(ctx context.Context) (telegram.WebhookInfo, error)
	SetWebhook(ctx context.Context, webhookURL string) error
	DeleteWebhook(ctx context.Context) error
	Send(ctx context.Context, chatID int64, text string) bool
}

// Config carries the Telegram settings the handler needs.
type Config struct {
	WebhookURL    string
	DefaultChatID int64
}

type handler struct {
	l        log.Logger
	uc       assistant.UseCase
	messages message.UseCase
	bot      Bot
	cfg      Config
}

// New creates the HTTP handler for the assistant, Telegram and email endpoints.
func New(l log.Logger, uc assistant.UseCase, messages message.UseCase, bot Bot, cfg Config) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		messages: messages,
		bot:      bot,
		cfg:      cfg,
	}
}
