package http

import (
	"time"

	"personal-assistant/internal/email"
	"personal-assistant/internal/model"
	"personal-assistant/pkg/gmail"
)

// --- Request DTOs ---

type inboxReq struct {
	Label string `form:"label"`
	Limit int    `form:"limit"`
}

func (r inboxReq) toInput() email.InboxInput {
	return email.InboxInput{Label: r.Label, Limit: r.Limit}
}

type storedReq struct {
	UnreadOnly bool `form:"unread_only"`
	Limit      int  `form:"limit"`
}

func (r storedReq) toInput() email.ListInput {
	return email.ListInput{UnreadOnly: r.UnreadOnly, Limit: r.Limit}
}

type draftReq struct {
	To      string `json:"to"      binding:"required"`
	Subject string `json:"subject"`
	Body    string `json:"body"    binding:"required"`
}

func (r draftReq) toInput() email.DraftInput {
	return email.DraftInput{To: r.To, Subject: r.Subject, Body: r.Body}
}

// --- Response DTOs ---

type messageResp struct {
	ID         string     `json:"id"`
	ThreadID   string     `json:"thread_id,omitempty"`
	Sender     string     `json:"sender"`
	Subject    string     `json:"subject"`
	Body       string     `json:"body"`
	Unread     bool       `json:"unread"`
	ReceivedAt *time.Time `json:"received_at,omitempty"`
}

type inboxResp struct {
	Label  string        `json:"label"`
	Emails []messageResp `json:"emails"`
	Count  int           `json:"count"`
}

type storedEmailResp struct {
	ID         string     `json:"id"`
	Sender     string     `json:"sender"`
	Subject    string     `json:"subject"`
	Summary    string     `json:"summary,omitempty"`
	Unread     bool       `json:"unread"`
	ReceivedAt *time.Time `json:"received_at,omitempty"`
	FetchedAt  time.Time  `json:"fetched_at"`
}

type storedResp struct {
	Emails []storedEmailResp `json:"emails"`
	Total  int               `json:"total"`
}

type markReadResp struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type draftResp struct {
	DraftID string `json:"draft_id"`
	Status  string `json:"status"`
}

type summaryResp struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Summary string `json:"summary"`
}

type labelsResp struct {
	Labels []string `json:"labels"`
}

func (h *handler) newInboxResp(label string, msgs []gmail.Message) inboxResp {
	resp := inboxResp{Label: label, Emails: make([]messageResp, 0, len(msgs)), Count: len(msgs)}
	for _, m := range msgs {
		r := messageResp{
			ID:       m.ID,
			ThreadID: m.ThreadID,
			Sender:   m.Sender,
			Subject:  m.Subject,
			Body:     m.Body,
			Unread:   m.Unread,
		}
		if !m.ReceivedAt.IsZero() {
			received := m.ReceivedAt
			r.ReceivedAt = &received
		}
		resp.Emails = append(resp.Emails, r)
	}
	return resp
}

func (h *handler) newStoredResp(emails []model.Email) storedResp {
	resp := storedResp{Emails: make([]storedEmailResp, 0, len(emails)), Total: len(emails)}
	for _, e := range emails {
		resp.Emails = append(resp.Emails, storedEmailResp{
			ID:         e.ID,
			Sender:     e.Sender,
			Subject:    e.Subject,
			Summary:    e.Summary,
			Unread:     e.IsUnread,
			ReceivedAt: e.ReceivedAt,
			FetchedAt:  e.CreatedAt,
		})
	}
	return resp
}
