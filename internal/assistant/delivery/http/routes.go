package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the assistant, Telegram, message and email endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	a := rg.Group("/assistant")
	{
		a.POST("/classify", h.Classify)
		a.POST("/respond", h.Respond)
	}

	tg := rg.Group("/telegram")
	{
		tg.GET("/status", h.TelegramStatus)
		tg.POST("/send", h.TelegramSend)
		tg.POST("/webhook/setup", h.SetupWebhook)
		tg.DELETE("/webhook", h.DeleteWebhook)
	}

	rg.GET("/messages", h.ListMessages)

	emails := rg.Group("/emails")
	{
		emails.GET("/unread", h.UnreadEmails)
		emails.POST("/send", h.SendEmail)
	}
}
