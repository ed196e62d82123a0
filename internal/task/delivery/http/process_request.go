package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/task"
)

func (h *handler) processCreateReq(c *gin.Context) (task.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.CreateInput{}, err
	}

	if strings.TrimSpace(req.ScheduledTime) == "" {
		return req.toInput(nil), nil
	}
	at, err := h.dates.Parse(req.ScheduledTime, h.now())
	if err != nil {
		return task.CreateInput{}, errInvalidScheduledTime
	}
	return req.toInput(&at), nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errInvalidID
	}
	return id, nil
}
