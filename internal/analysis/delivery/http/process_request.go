package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "analysis.http.processAnalyzeReq: %v", err)
		return req, errWrongBody
	}
	if req.Date != "" {
		d, err := h.dates.ParseDay(req.Date)
		if err != nil {
			return req, errWrongBody
		}
		req.date = d
	}
	return req, nil
}

// processAnalyzeDiaryReq reads the diary id and an optional body.
func (h *handler) processAnalyzeDiaryReq(c *gin.Context) (string, analyzeDiaryReq, error) {
	var req analyzeDiaryReq
	id := c.Param("id")
	if id == "" {
		return "", req, errMissingID
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.l.Warnf(c.Request.Context(), "analysis.http.processAnalyzeDiaryReq: %v", err)
		return "", req, errWrongBody
	}
	return id, req, nil
}
