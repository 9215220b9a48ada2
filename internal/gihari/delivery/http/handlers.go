package http

import (
	"github.com/gin-gonic/gin"

	"bnapp/internal/middleware"
	"bnapp/pkg/response"
)

// Command godoc
// @Summary     Run an assistant command
// @Description Classifies Hebrew free text (add event, free time, suggestion) and runs it for the viewer.
// @Tags        Gihari
// @Accept      json
// @Produce     json
// @Param       X-BNAPP-User header string     false "Viewer (binyamin|nana)"
// @Param       body         body   commandReq true  "Command"
// @Success     200 {object} replyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/gihari/command [POST]
func (h *handler) Command(c *gin.Context) {
	ctx := c.Request.Context()

	var req commandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	reply, err := h.uc.Command(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Command: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, newReplyResp(reply))
}

// Summary godoc
// @Summary     Today's load summary
// @Tags        Gihari
// @Produce     json
// @Success     200 {object} summaryResp
// @Router      /api/v1/gihari/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Summary(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, newSummaryResp(out))
}

// Suggest godoc
// @Summary     Most urgent task for today
// @Tags        Gihari
// @Produce     json
// @Param       noHumor query bool false "Drop the humor line"
// @Success     200 {object} replyResp
// @Router      /api/v1/gihari/suggest [GET]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	var req replyOptionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	reply, err := h.uc.Suggest(ctx, middleware.GetScope(c), req.toOptions())
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, newReplyResp(reply))
}

// FreeTime godoc
// @Summary     Today's free slots
// @Tags        Gihari
// @Produce     json
// @Param       noHumor query bool false "Drop the humor line"
// @Success     200 {object} replyResp
// @Router      /api/v1/gihari/free-time [GET]
func (h *handler) FreeTime(c *gin.Context) {
	ctx := c.Request.Context()

	var req replyOptionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	reply, err := h.uc.FreeTime(ctx, middleware.GetScope(c), req.toOptions())
	if err != nil {
		h.l.Errorf(ctx, "uc.FreeTime: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, newReplyResp(reply))
}
