package http

import (
	"github.com/gin-gonic/gin"
)

// processReq binds the shared preview/commit body.
func (h *handler) processReq(c *gin.Context) (quickEntryReq, error) {
	var req quickEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "quickentry.http.processReq: %v", err)
		return req, errWrongBody
	}
	return req, nil
}
