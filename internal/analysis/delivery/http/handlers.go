package http

import (
	"github.com/gin-gonic/gin"

	"primering/internal/analysis"
	"primering/internal/middleware"
	"primering/pkg/response"
)

// Analyze godoc
// @Summary     Analyze diary text
// @Description Summarizes free diary text with the configured language model. Requests sharing a key supersede older ones.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Content, optional date (YYYY-MM-DD) and key"
// @Success     200 {object} analysisResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Superseded"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Analysis failed"
// @Failure     503 {object} response.Resp "No language model configured"
// @Router      /api/v1/analysis [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()
	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newAnalysisResp(output))
}

// AnalyzeDiary godoc
// @Summary     Analyze a stored diary entry
// @Description Summarizes the diary entry with the configured language model.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       id   path string          true  "Diary ID"
// @Param       body body analyzeDiaryReq false "Optional supersede key"
// @Success     200 {object} analysisResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Superseded"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Analysis failed"
// @Failure     503 {object} response.Resp "No language model configured"
// @Router      /api/v1/diaries/{id}/analysis [POST]
func (h *handler) AnalyzeDiary(c *gin.Context) {
	ctx := c.Request.Context()
	id, req, err := h.processAnalyzeDiaryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, middleware.GetScope(c), analysis.AnalyzeInput{DiaryID: id, Key: req.Key})
	if err != nil {
		h.l.Warnf(ctx, "uc.Analyze %s: %v", id, err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newAnalysisResp(output))
}
