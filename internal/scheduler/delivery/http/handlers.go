package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/scheduler"
	pkgErrors "personal-assistant/pkg/errors"
	"personal-assistant/pkg/response"
)

type jobsResp struct {
	Jobs []scheduler.JobInfo `json:"jobs"`
}

type runResp struct {
	Job scheduler.JobInfo `json:"job"`
}

type removeResp struct {
	Name    string `json:"name"`
	Removed bool   `json:"removed"`
}

// ListJobs godoc
// @Summary     List scheduled jobs
// @Description Returns every periodic job with its next and last run.
// @Tags        Scheduler
// @Produce     json
// @Success     200 {object} jobsResp
// @Router      /api/v1/scheduler/jobs [GET]
func (h *handler) ListJobs(c *gin.Context) {
	response.OK(c, jobsResp{Jobs: h.sched.Jobs()})
}

// RunJob godoc
// @Summary     Run a job now
// @Description Runs the named job immediately, outside its schedule.
// @Tags        Scheduler
// @Produce     json
// @Param       name path string true "Job name"
// @Success     200 {object} runResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - job is already running"
// @Failure     502 {object} response.Resp "Job failed"
// @Router      /api/v1/scheduler/jobs/{name}/run [POST]
func (h *handler) RunJob(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	if err := h.sched.RunNow(ctx, name); err != nil {
		h.l.Errorf(ctx, "scheduler.delivery.http.RunJob: %s: %v", name, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, runResp{Job: h.jobInfo(name)})
}

// PauseJob godoc
// @Summary     Pause a job
// @Description Keeps the job registered but skips its scheduled runs until it is resumed.
// @Tags        Scheduler
// @Produce     json
// @Param       name path string true "Job name"
// @Success     200 {object} runResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/scheduler/jobs/{name}/pause [POST]
func (h *handler) PauseJob(c *gin.Context) {
	h.changeJob(c, "PauseJob", h.sched.Pause)
}

// ResumeJob godoc
// @Summary     Resume a paused job
// @Tags        Scheduler
// @Produce     json
// @Param       name path string true "Job name"
// @Success     200 {object} runResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/scheduler/jobs/{name}/resume [POST]
func (h *handler) ResumeJob(c *gin.Context) {
	h.changeJob(c, "ResumeJob", h.sched.Resume)
}

// RemoveJob godoc
// @Summary     Remove a job
// @Description Unschedules the job until the service restarts.
// @Tags        Scheduler
// @Produce     json
// @Param       name path string true "Job name"
// @Success     200 {object} removeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/scheduler/jobs/{name} [DELETE]
func (h *handler) RemoveJob(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	if err := h.sched.Remove(name); err != nil {
		h.l.Warnf(ctx, "scheduler.delivery.http.RemoveJob: %s: %v", name, err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, removeResp{Name: name, Removed: true})
}

func (h *handler) changeJob(c *gin.Context, op string, change func(name string) error) {
	ctx := c.Request.Context()
	name := c.Param("name")

	if err := change(name); err != nil {
		h.l.Warnf(ctx, "scheduler.delivery.http.%s: %s: %v", op, name, err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, runResp{Job: h.jobInfo(name)})
}

func (h *handler) jobInfo(name string) scheduler.JobInfo {
	for _, j := range h.sched.Jobs() {
		if j.Name == name {
			return j
		}
	}
	return scheduler.JobInfo{Name: name}
}

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, scheduler.ErrJobNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "job not found")
	case errors.Is(err, scheduler.ErrJobRunning):
		return pkgErrors.NewHTTPError(http.StatusConflict, "job is already running")
	default:
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "job failed: "+err.Error())
	}
}
