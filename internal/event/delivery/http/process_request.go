package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("dateKey and id are required")

// parseDate accepts a YYYY-MM-DD key, or "today"/"" for the current day.
func (h *handler) parseDate(raw string) (time.Time, error) {
	if raw == "" || raw == "today" {
		return h.dates.StartOfDay(h.now()), nil
	}
	t, err := h.dates.ParseDateKey(raw)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}

// processCreateReq binds and validates the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds the partial update body and the item address from the URI.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.DateKey, req.ID = c.Param("dateKey"), c.Param("id")
	if req.DateKey == "" || req.ID == "" {
		return req, errMissingID
	}
	return req, req.validate()
}

// processHistoryReq binds the history query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, time.Time, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, time.Time{}, err
	}
	end, err := h.parseDate(req.End)
	return req, end, err
}

// processRangeReq binds the from/to query parameters.
func (h *handler) processRangeReq(c *gin.Context) (time.Time, time.Time, error) {
	var req rangeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return time.Time{}, time.Time{}, err
	}
	from, err := h.parseDate(req.From)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := h.parseDate(req.To)
	return from, to, err
}
