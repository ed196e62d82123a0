package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processTextReq(c *gin.Context) (textReq, error) {
	var req textReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.ChatID == 0 {
		req.ChatID = h.cfg.DefaultChatID
	}
	if req.ChatID == 0 {
		return req, errNoChat
	}
	return req, req.validate()
}

// processSetupWebhookReq accepts an empty body.
func (h *handler) processSetupWebhookReq(c *gin.Context) (string, error) {
	var req setupWebhookReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return "", err
		}
	}
	if req.URL == "" {
		req.URL = h.cfg.WebhookURL
	}
	if req.URL == "" {
		return "", errNoWebhookURL
	}
	return req.URL, nil
}

func (h *handler) processListMessagesReq(c *gin.Context) (listMessagesReq, error) {
	var req listMessagesReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

func (h *handler) processUnreadReq(c *gin.Context) (unreadReq, error) {
	var req unreadReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

func (h *handler) processSendEmailReq(c *gin.Context) (sendEmailReq, error) {
	var req sendEmailReq
	err := c.ShouldBindJSON(&req)
	return req, err
}
