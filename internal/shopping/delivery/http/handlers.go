package http

import (
	"github.com/gin-gonic/gin"

	"bnapp/pkg/response"
)

// List godoc
// @Summary     List a shopping list
// @Tags        Shopping
// @Produce     json
// @Param       list path string true "List name (default)"
// @Success     200 {object} listResp
// @Router      /api/v1/shopping/{list} [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	list := c.Param("list")

	items, err := h.uc.List(ctx, list)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(list, items))
}

// Add godoc
// @Summary     Add a line to a shopping list
// @Tags        Shopping
// @Accept      json
// @Produce     json
// @Param       list path string true "List name"
// @Param       body body addReq true "Line"
// @Success     201 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/shopping/{list} [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	item, err := h.uc.Add(ctx, req.toInput(c.Param("list")))
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.Created(c, newItemResp(item))
}

// Toggle godoc
// @Summary     Toggle a line's completed flag
// @Tags        Shopping
// @Produce     json
// @Param       list path string true "List name"
// @Param       id   path string true "Line ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/shopping/{list}/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	item, err := h.uc.Toggle(ctx, c.Param("list"), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(item))
}

// Delete godoc
// @Summary     Delete a line
// @Tags        Shopping
// @Produce     json
// @Param       list path string true "List name"
// @Param       id   path string true "Line ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/shopping/{list}/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("list"), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
