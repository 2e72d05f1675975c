package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the create category request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "category.http.processCreateReq: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

// processUpdateReq binds the update body and the id path param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "category.http.processUpdateReq: %v", err)
		return req, errWrongBody
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}
