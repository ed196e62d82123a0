package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the mailbox endpoints onto rg. Reading unread mail and sending
// live with the assistant endpoints under the same group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	emails := rg.Group("/emails")
	{
		emails.GET("/inbox", h.Inbox)
		emails.GET("/labels", h.Labels)
		emails.GET("/stored", h.Stored)
		emails.POST("/mark-read/:id", h.MarkRead)
		emails.POST("/draft", h.CreateDraft)
		emails.GET("/summary/:id", h.Summary)
	}
}
