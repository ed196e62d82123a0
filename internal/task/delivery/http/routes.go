package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the task endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.POST("/:id/cancel", h.Cancel)
		tasks.DELETE("/:id", h.Delete)
	}
}
