package http

import (
	"github.com/gin-gonic/gin"

	"personal-assistant/internal/email"
	"personal-assistant/pkg/response"
)

// Inbox godoc
// @Summary     List mailbox messages by label
// @Description Lists messages carrying the label straight from Gmail and stores them locally.
// @Tags        Email
// @Produce     json
// @Param       label query string false "INBOX, STARRED, SENT, DRAFT, SPAM, TRASH, IMPORTANT or UNREAD (default: INBOX)"
// @Param       limit query int    false "Maximum messages (default: 20)"
// @Success     200 {object} inboxResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Email service not configured"
// @Router      /api/v1/emails/inbox [GET]
func (h *handler) Inbox(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInboxReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	msgs, err := h.uc.Inbox(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "email.delivery.http.Inbox: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newInboxResp(email.NormalizeLabel(req.Label), msgs))
}

// Labels godoc
// @Summary     Mailbox labels
// @Tags        Email
// @Produce     json
// @Success     200 {object} labelsResp
// @Router      /api/v1/emails/labels [GET]
func (h *handler) Labels(c *gin.Context) {
	response.OK(c, labelsResp{Labels: email.Labels})
}

// Stored godoc
// @Summary     Previously fetched emails
// @Description Returns the local record of fetched mail with any generated summaries, newest first.
// @Tags        Email
// @Produce     json
// @Param       unread_only query bool false "Only messages still unread when last fetched"
// @Param       limit       query int  false "Page size (default: 20)"
// @Success     200 {object} storedResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/emails/stored [GET]
func (h *handler) Stored(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStoredReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	emails, err := h.uc.Stored(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "email.delivery.http.Stored: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStoredResp(emails))
}

// MarkRead godoc
// @Summary     Mark an email as read
// @Tags        Email
// @Produce     json
// @Param       id path string true "Gmail message ID"
// @Success     200 {object} markReadResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Email service not configured"
// @Router      /api/v1/emails/mark-read/{id} [POST]
func (h *handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.MarkRead(ctx, id); err != nil {
		h.l.Errorf(ctx, "email.delivery.http.MarkRead: %s: %v", id, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, markReadResp{ID: id, Status: "marked"})
}

// CreateDraft godoc
// @Summary     Create an email draft
// @Tags        Email
// @Accept      json
// @Produce     json
// @Param       body body draftReq true "Draft"
// @Success     200  {object} draftResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "Email service not configured"
// @Router      /api/v1/emails/draft [POST]
func (h *handler) CreateDraft(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDraftReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := h.uc.CreateDraft(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "email.delivery.http.CreateDraft: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, draftResp{DraftID: id, Status: "created"})
}

// Summary godoc
// @Summary     Summarize an email
// @Description Returns the stored summary, generating it with the language model on first request.
// @Tags        Email
// @Produce     json
// @Param       id path string true "Gmail message ID"
// @Success     200 {object} summaryResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Summary could not be generated"
// @Router      /api/v1/emails/summary/{id} [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	e, err := h.uc.Summary(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "email.delivery.http.Summary: %s: %v", id, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, summaryResp{ID: e.ID, Subject: e.Subject, Summary: e.Summary})
}
