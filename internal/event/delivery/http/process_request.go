package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"primering/internal/event"
)

// processCreateReq binds and validates the create event request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "event.http.processCreateReq: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

// processListReq reads the optional from/to/category_id query params.
func (h *handler) processListReq(c *gin.Context) (event.ListInput, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "event.http.processListReq: %v", err)
		return event.ListInput{}, errWrongQuery
	}

	input := event.ListInput{CategoryID: req.CategoryID}
	var err error
	if input.From, err = parseOptionalTime(req.From); err != nil {
		return event.ListInput{}, errWrongQuery
	}
	if input.To, err = parseOptionalTime(req.To); err != nil {
		return event.ListInput{}, errWrongQuery
	}
	return input, nil
}

// processUpdateReq binds the update body and the id path param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "event.http.processUpdateReq: %v", err)
		return req, errWrongBody
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

func parseOptionalTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}
