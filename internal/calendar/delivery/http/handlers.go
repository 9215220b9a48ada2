package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bnapp/internal/calendar"
	"bnapp/internal/middleware"
	pkgErrors "bnapp/pkg/errors"
	"bnapp/pkg/response"
)

type monthReq struct {
	Year  int `uri:"year" binding:"required"`
	Month int `uri:"month" binding:"required,min=1,max=12"`
}

func (h *handler) mapError(err error) error {
	if errors.Is(err, calendar.ErrInvalidMonth) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return pkgErrors.ErrInternalServerError
}

// Month godoc
// @Summary     Month grid
// @Description Hebrew dates, holidays, candle lighting and item counts for each day of the month.
// @Tags        Calendar
// @Produce     json
// @Param       year  path int true "Year"
// @Param       month path int true "Month (1-12)"
// @Success     200 {object} calendar.MonthOutput
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/calendar/{year}/{month} [GET]
func (h *handler) Month(c *gin.Context) {
	ctx := c.Request.Context()

	var req monthReq
	if err := c.ShouldBindUri(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Month(ctx, middleware.GetScope(c), req.Year, req.Month)
	if err != nil {
		h.l.Errorf(ctx, "uc.Month: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, out)
}

// RegisterRoutes maps the calendar endpoint.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/calendar/:year/:month", mw.Viewer(), h.Month)
}
