package http

import (
	"github.com/gin-gonic/gin"

	"bnapp/pkg/response"
)

// ForDate godoc
// @Summary     Noon forecast for a day
// @Tags        Weather
// @Produce     json
// @Param       date path string true "YYYY-MM-DD or today"
// @Success     200 {object} weather.Report
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Upstream error"
// @Router      /api/v1/weather/{date} [GET]
func (h *handler) ForDate(c *gin.Context) {
	ctx := c.Request.Context()

	raw := c.Param("date")
	date := h.dates.StartOfDay(h.now())
	if raw != "today" {
		t, err := h.dates.ParseDateKey(raw)
		if err != nil {
			response.Error(c, errInvalidDate, nil)
			return
		}
		date = t
	}

	r, err := h.uc.ForDate(ctx, date)
	if err != nil {
		h.l.Warnf(ctx, "uc.ForDate: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, r)
}
