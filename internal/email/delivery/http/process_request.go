package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *handler) processInboxReq(c *gin.Context) (inboxReq, error) {
	var req inboxReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

func (h *handler) processStoredReq(c *gin.Context) (storedReq, error) {
	var req storedReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

func (h *handler) processDraftReq(c *gin.Context) (draftReq, error) {
	var req draftReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errInvalidID
	}
	return id, nil
}
