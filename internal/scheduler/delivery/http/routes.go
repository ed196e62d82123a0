package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the scheduler endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	jobs := rg.Group("/scheduler/jobs")
	{
		jobs.GET("", h.ListJobs)
		jobs.POST("/:name/run", h.RunJob)
		jobs.POST("/:name/pause", h.PauseJob)
		jobs.POST("/:name/resume", h.ResumeJob)
		jobs.DELETE("/:name", h.RemoveJob)
	}
}
