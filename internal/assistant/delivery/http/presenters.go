package http

import (
	"strings"
	"time"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/message"
	"personal-assistant/internal/model"
	"personal-assistant/internal/router"
	"personal-assistant/pkg/gmail"
	"personal-assistant/pkg/telegram"
)

// --- Request DTOs ---

type textReq struct {
	Text string `json:"text" binding:"required"`
}

func (r textReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errEmptyText
	}
	return nil
}

type sendMessageReq struct {
	ChatID int64  `json:"chat_id"` // 0 uses the default chat
	Text   string `json:"text"    binding:"required"`
}

func (r sendMessageReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errEmptyText
	}
	return nil
}

type setupWebhookReq struct {
	URL string `json:"url"` // empty uses the configured webhook url
}

type listMessagesReq struct {
	ChatID int64 `form:"chat_id"`
	Limit  int   `form:"limit"`
}

func (r listMessagesReq) toInput() message.ListInput {
	return message.ListInput{ChatID: r.ChatID, Limit: r.Limit}
}

type unreadReq struct {
	Limit int `form:"limit"`
}

type sendEmailReq struct {
	To      string `json:"to"      binding:"required"`
	Subject string `json:"subject"`
	Body    string `json:"body"    binding:"required"`
}

func (r sendEmailReq) toInput() assistant.SendEmailInput {
	return assistant.SendEmailInput{To: r.To, Subject: r.Subject, Body: r.Body}
}

// --- Response DTOs ---

type intentResp struct {
	Action     string            `json:"action"`
	Parameters map[string]string `json:"parameters"`
	Confidence int               `json:"confidence"`
	Rule       string            `json:"rule,omitempty"`
}

type replyResp struct {
	Reply string `json:"reply"`
}

type botResp struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
}

type webhookResp struct {
	URL                string `json:"url"`
	PendingUpdateCount int    `json:"pending_update_count"`
	LastErrorMessage   string `json:"last_error_message,omitempty"`
}

type statusResp struct {
	Configured    bool         `json:"configured"`
	Bot           *botResp     `json:"bot,omitempty"`
	Webhook       *webhookResp `json:"webhook,omitempty"`
	ConfiguredURL string       `json:"configured_webhook_url,omitempty"`
}

type sendMessageResp struct {
	ChatID int64 `json:"chat_id"`
	Sent   bool  `json:"sent"`
}

type messageResp struct {
	ID        string    `json:"id"`
	ChatID    int64     `json:"chat_id"`
	Username  string    `json:"username,omitempty"`
	Text      string    `json:"text"`
	Command   string    `json:"command,omitempty"`
	Action    string    `json:"action,omitempty"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

type listMessagesResp struct {
	Messages []messageResp `json:"messages"`
	Total    int           `json:"total"`
}

type emailResp struct {
	ID      string `json:"id"`
	Sender  string `json:"sender"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type unreadResp struct {
	Emails []emailResp `json:"emails"`
	Count  int         `json:"count"`
}

func (h *handler) newIntentResp(intent router.Intent) intentResp {
	params := intent.Params
	if params == nil {
		params = map[string]string{}
	}
	return intentResp{
		Action:     string(intent.Action),
		Parameters: params,
		Confidence: intent.Confidence,
		Rule:       intent.Rule,
	}
}

func (h *handler) newStatusResp(me *telegram.User, info *telegram.WebhookInfo) statusResp {
	resp := statusResp{Configured: true, ConfiguredURL: h.cfg.WebhookURL}
	if me != nil {
		resp.Bot = &botResp{ID: me.ID, Username: me.Username, FirstName: me.FirstName}
	}
	if info != nil {
		resp.Webhook = &webhookResp{
			URL:                info.URL,
			PendingUpdateCount: info.PendingUpdateCount,
			LastErrorMessage:   info.LastErrorMessage,
		}
	}
	return resp
}

func (h *handler) newListMessagesResp(msgs []model.Message) listMessagesResp {
	resp := listMessagesResp{Messages: make([]messageResp, 0, len(msgs)), Total: len(msgs)}
	for _, m := range msgs {
		resp.Messages = append(resp.Messages, messageResp{
			ID:        m.ID,
			ChatID:    m.ChatID,
			Username:  m.Username,
			Text:      m.Text,
			Command:   m.Command,
			Action:    m.Action,
			Response:  m.Response,
			CreatedAt: m.CreatedAt,
		})
	}
	return resp
}

func (h *handler) newUnreadResp(msgs []gmail.Message) unreadResp {
	resp := unreadResp{Emails: make([]emailResp, 0, len(msgs)), Count: len(msgs)}
	for _, m := range msgs {
		resp.Emails = append(resp.Emails, emailResp{ID: m.ID, Sender: m.Sender, Subject: m.Subject, Body: m.Body})
	}
	return resp
}
