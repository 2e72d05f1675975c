package http

import (
	"github.com/gin-gonic/gin"

	"primering/internal/middleware"
	"primering/pkg/response"
)

// List godoc
// @Summary     List events
// @Description Returns the caller's events ordered by start date. from/to (RFC3339) keep events overlapping the window.
// @Tags        Events
// @Produce     json
// @Param       from        query string false "Window start (RFC3339)"
// @Param       to          query string false "Window end (RFC3339)"
// @Param       category_id query string false "Category ID"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [GET]
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
// @Summary     Create an event
// @Description Stores an event. Priority defaults to medium and the category to "default". Mirrored to Google Calendar when configured.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Event data"
// @Success     200  {object} itemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [POST]
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

	response.OK(c, h.newItemResp(output.Event, output.CalendarLink))
}

// Detail godoc
// @Summary     Get an event
// @Tags        Events
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemResp(output.Event, ""))
}

// Update godoc
// @Summary     Update an event
// @Description Partially updates an event. Omitted fields keep their value.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Event ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [PUT]
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

	response.OK(c, h.newItemResp(output.Event, ""))
}

// Delete godoc
// @Summary     Delete an event
// @Tags        Events
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [DELETE]
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
