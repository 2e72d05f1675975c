package http

import (
	"github.com/gin-gonic/gin"

	"primering/internal/middleware"
	"primering/pkg/response"
)

// List godoc
// @Summary     List categories
// @Description Returns the caller's categories in display order. The default set is returned until one is saved.
// @Tags        Categories
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a category
// @Description Appends a category. Names must be unique per user.
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Category data"
// @Success     200  {object} itemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - name already exists"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories [POST]
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

	response.OK(c, h.newItemResp(output.Category))
}

// Update godoc
// @Summary     Update a category
// @Description Partially updates a category.
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Category ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - name already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories/{id} [PUT]
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

	response.OK(c, h.newItemResp(output.Category))
}

// Delete godoc
// @Summary     Delete a category
// @Description Removes a category. Events keep their category id.
// @Tags        Categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories/{id} [DELETE]
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
