package http

import (
	"github.com/gin-gonic/gin"

	"primering/internal/middleware"
	"primering/pkg/response"
)

// List godoc
// @Summary     List diary entries
// @Description Returns the caller's entries, newest first. from/to are inclusive dates (YYYY-MM-DD).
// @Tags        Diaries
// @Produce     json
// @Param       from query string false "First date"
// @Param       to   query string false "Last date"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/diaries [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a diary entry
// @Description Stores an entry. date defaults to now and mood to neutral.
// @Tags        Diaries
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Diary data"
// @Success     200  {object} itemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/diaries [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemResp(output.Diary))
}

// Detail godoc
// @Summary     Get a diary entry
// @Tags        Diaries
// @Produce     json
// @Param       id path string true "Diary ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/diaries/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemResp(output.Diary))
}

// Update godoc
// @Summary     Update a diary entry
// @Description Partially updates an entry. Omitted fields keep their value.
// @Tags        Diaries
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Diary ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/diaries/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemResp(output.Diary))
}

// Delete godoc
// @Summary     Delete a diary entry
// @Tags        Diaries
// @Produce     json
// @Param       id path string true "Diary ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/diaries/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
