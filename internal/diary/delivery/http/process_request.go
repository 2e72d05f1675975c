package http

import (
	"github.com/gin-gonic/gin"

	"primering/internal/diary"
)

// processCreateReq binds and validates the create diary request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "diary.http.processCreateReq: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

// processListReq reads the optional from/to dates. "to" covers its whole day.
func (h *handler) processListReq(c *gin.Context) (diary.ListInput, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "diary.http.processListReq: %v", err)
		return diary.ListInput{}, errWrongQuery
	}

	var input diary.ListInput
	if req.From != "" {
		from, err := h.dates.ParseDay(req.From)
		if err != nil {
			return diary.ListInput{}, errWrongQuery
		}
		input.From = from
	}
	if req.To != "" {
		to, err := h.dates.ParseDay(req.To)
		if err != nil {
			return diary.ListInput{}, errWrongQuery
		}
		input.To = h.dates.EndOfDay(to)
	}
	return input, nil
}

// processUpdateReq binds the update body and the id path param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "diary.http.processUpdateReq: %v", err)
		return req, errWrongBody
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}
