package http

import (
	"github.com/gin-gonic/gin"

	"primering/internal/middleware"
	"primering/internal/quickentry"
	"primering/pkg/response"
)

// Preview godoc
// @Summary     Preview quick-entry text
// @Description Parses free text such as "내일 오후 2시 회의" into a draft. preview is null when no date was found.
// @Tags        QuickEntry
// @Accept      json
// @Produce     json
// @Param       body body quickEntryReq true "Text and optional reference time"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/quick-entry/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Preview(ctx, middleware.GetScope(c), quickentry.PreviewInput{
		Input: req.Input,
		Now:   req.reference(),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// Commit godoc
// @Summary     Commit quick-entry text
// @Description Parses the text and creates a one-hour event from the draft.
// @Tags        QuickEntry
// @Accept      json
// @Produce     json
// @Param       body body quickEntryReq true "Text and optional reference time"
// @Success     200 {object} commitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "No date found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/quick-entry/commit [POST]
func (h *handler) Commit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Commit(ctx, middleware.GetScope(c), quickentry.CommitInput{
		Input: req.Input,
		Now:   req.reference(),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Commit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCommitResp(output))
}
