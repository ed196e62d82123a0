package http

import (
	"github.com/gin-gonic/gin"

	"personal-assistant/pkg/response"
)

// Classify godoc
// @Summary     Classify a message
// @Description Returns the intent the assistant would act on, without running it.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Message text"
// @Success     200  {object} intentResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newIntentResp(h.uc.Classify(ctx, req.Text)))
}

// Respond godoc
// @Summary     Classify and answer a message
// @Description Runs the full assistant pipeline and returns the reply that would be sent to the chat.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Message text"
// @Success     200  {object} replyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/respond [POST]
func (h *handler) Respond(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, replyResp{Reply: h.uc.Respond(ctx, req.Text)})
}

// TelegramStatus godoc
// @Summary     Telegram bot status
// @Description Returns the bot account and its current webhook registration.
// @Tags        Telegram
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     502 {object} response.Resp "Telegram request failed"
// @Router      /api/v1/telegram/status [GET]
func (h *handler) TelegramStatus(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.bot.Configured() {
		response.OK(c, statusResp{Configured: false, ConfiguredURL: h.cfg.WebhookURL})
		return
	}

	me, err := h.bot.GetMe(ctx)
	if err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.TelegramStatus: getMe: %v", err)
		response.Error(c, errTelegramUnreachable)
		return
	}
	info, err := h.bot.GetWebhookInfo(ctx)
	if err != nil {
		h.l.Warnf(ctx, "assistant.delivery.http.TelegramStatus: getWebhookInfo: %v", err)
		response.OK(c, h.newStatusResp(&me, nil))
		return
	}

	response.OK(c, h.newStatusResp(&me, &info))
}

// TelegramSend godoc
// @Summary     Send a Telegram message
// @Description Sends text to chat_id, or to the default chat when chat_id is omitted.
// @Tags        Telegram
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "Message"
// @Success     200  {object} sendMessageResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Telegram did not accept the message"
// @Failure     503  {object} response.Resp "Bot not configured"
// @Router      /api/v1/telegram/send [POST]
func (h *handler) TelegramSend(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.bot.Configured() {
		response.Error(c, errBotNotConfigured)
		return
	}

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !h.bot.Send(ctx, req.ChatID, req.Text) {
		h.l.Warnf(ctx, "assistant.delivery.http.TelegramSend: delivery to %d failed", req.ChatID)
		response.Error(c, errDeliveryFailed)
		return
	}

	response.OK(c, sendMessageResp{ChatID: req.ChatID, Sent: true})
}

// SetupWebhook godoc
// @Summary     Register the Telegram webhook
// @Description Registers the given url, or the configured webhook url, with Telegram.
// @Tags        Telegram
// @Accept      json
// @Produce     json
// @Param       body body setupWebhookReq false "Webhook url"
// @Success     200  {object} response.Resp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Telegram request failed"
// @Failure     503  {object} response.Resp "Bot not configured"
// @Router      /api/v1/telegram/webhook/setup [POST]
func (h *handler) SetupWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.bot.Configured() {
		response.Error(c, errBotNotConfigured)
		return
	}

	url, err := h.processSetupWebhookReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.bot.SetWebhook(ctx, url); err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.SetupWebhook: %v", err)
		response.Error(c, errTelegramUnreachable)
		return
	}

	h.l.Infof(ctx, "assistant.delivery.http.SetupWebhook: registered %s", url)
	response.OK(c, gin.H{"url": url})
}

// DeleteWebhook godoc
// @Summary     Remove the Telegram webhook
// @Description Unregisters the webhook so updates can be fetched by polling again.
// @Tags        Telegram
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     502 {object} response.Resp "Telegram request failed"
// @Failure     503 {object} response.Resp "Bot not configured"
// @Router      /api/v1/telegram/webhook [DELETE]
func (h *handler) DeleteWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.bot.Configured() {
		response.Error(c, errBotNotConfigured)
		return
	}

	if err := h.bot.DeleteWebhook(ctx); err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.DeleteWebhook: %v", err)
		response.Error(c, errTelegramUnreachable)
		return
	}

	h.l.Info(ctx, "assistant.delivery.http.DeleteWebhook: webhook removed")
	response.OK(c, gin.H{"deleted": true})
}

// ListMessages godoc
// @Summary     Recent chat messages
// @Description Returns persisted messages and their replies, newest first.
// @Tags        Messages
// @Produce     json
// @Param       chat_id query int false "Only this chat"
// @Param       limit   query int false "Page size (default: 20)"
// @Success     200 {object} listMessagesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/messages [GET]
func (h *handler) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListMessagesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	msgs, err := h.messages.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.ListMessages: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListMessagesResp(msgs))
}

// UnreadEmails godoc
// @Summary     Unread emails
// @Tags        Email
// @Produce     json
// @Param       limit query int false "Maximum messages (default: email page size)"
// @Success     200 {object} unreadResp
// @Failure     503 {object} response.Resp "Email service not configured"
// @Router      /api/v1/emails/unread [GET]
func (h *handler) UnreadEmails(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUnreadReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	msgs, err := h.uc.UnreadEmails(ctx, req.Limit)
	if err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.UnreadEmails: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUnreadResp(msgs))
}

// SendEmail godoc
// @Summary     Send an email
// @Tags        Email
// @Accept      json
// @Produce     json
// @Param       body body sendEmailReq true "Email"
// @Success     200  {object} response.Resp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Mail provider rejected the message"
// @Failure     503  {object} response.Resp "Email service not configured"
// @Router      /api/v1/emails/send [POST]
func (h *handler) SendEmail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendEmailReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.SendEmail(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.SendEmail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"to": req.To, "sent": true})
}
