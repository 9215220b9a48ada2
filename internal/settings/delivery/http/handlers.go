package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bnapp/internal/settings"
	"bnapp/pkg/response"
)

// Get godoc
// @Summary     Get settings
// @Tags        Settings
// @Produce     json
// @Success     200 {object} settingsResp
// @Router      /api/v1/settings [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Get(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, newSettingsResp(s))
}

// SaveCity godoc
// @Summary     Save the home city
// @Description Geocodes the city. When the lookup fails the city is saved without coordinates and 502 is returned with the saved settings.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body saveCityReq true "City"
// @Success     200 {object} settingsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "City saved without coordinates"
// @Router      /api/v1/settings/city [PUT]
func (h *handler) SaveCity(c *gin.Context) {
	ctx := c.Request.Context()

	var req saveCityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.uc.SaveCity(ctx, req.City)
	if errors.Is(err, settings.ErrGeocodeFailed) {
		h.l.Warnf(ctx, "uc.SaveCity: %v", err)
		c.JSON(http.StatusBadGateway, response.Resp{
			ErrorCode: http.StatusBadGateway,
			Message:   err.Error(),
			Data:      newSettingsResp(s),
		})
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.SaveCity: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, newSettingsResp(s))
}
