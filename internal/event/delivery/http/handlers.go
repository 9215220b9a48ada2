package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bnapp/internal/event"
	"bnapp/internal/middleware"
	"bnapp/internal/model"
	"bnapp/pkg/response"
)

// Create godoc
// @Summary     Create an item
// @Description Creates an event or task. The owner defaults to the viewer and an empty dateKey stores the item as undated.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-BNAPP-User header string    false "Viewer (binyamin|nana)"
// @Param       body         body   createReq true  "Item data"
// @Success     201 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	item, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.Created(c, newItemResp(item))
}

// Detail godoc
// @Summary     Get an item
// @Tags        Events
// @Produce     json
// @Param       dateKey path string true "Date key (YYYY-MM-DD or undated)"
// @Param       id      path string true "Item ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/events/items/{dateKey}/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	item, err := h.uc.Detail(ctx, middleware.GetScope(c), c.Param("dateKey"), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(item))
}

// Update godoc
// @Summary     Update an item
// @Description Partial update. Sending a different dateKey moves the item to that day.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       dateKey path string    true "Current date key"
// @Param       id      path string    true "Item ID"
// @Param       body    body updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/events/items/{dateKey}/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	item, err := h.uc.Update(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(item))
}

// Delete godoc
// @Summary     Delete an item
// @Tags        Events
// @Produce     json
// @Param       dateKey path string true "Date key"
// @Param       id      path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/events/items/{dateKey}/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, middleware.GetScope(c), c.Param("dateKey"), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Day godoc
// @Summary     List a day
// @Description Items of every participant on the day, recurring items included, timed items first.
// @Tags        Events
// @Produce     json
// @Param       date path string true "YYYY-MM-DD or today"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/events/days/{date} [GET]
func (h *handler) Day(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.parseDate(c.Param("date"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ListDay(ctx, middleware.GetScope(c), date)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListDay: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDayResp(out))
}

// Range godoc
// @Summary     Items of a date range
// @Tags        Events
// @Produce     json
// @Param       from query string true "YYYY-MM-DD"
// @Param       to   query string true "YYYY-MM-DD, at most 62 days after from"
// @Success     200 {object} rangeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/events/range [GET]
func (h *handler) Range(c *gin.Context) {
	ctx := c.Request.Context()

	from, to, err := h.processRangeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	days, err := h.uc.ListRange(ctx, middleware.GetScope(c), from, to)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListRange: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRangeResp(days))
}

// Load godoc
// @Summary     Daily load
// @Description Busy minutes and free slots (08:00–22:00, at least 30 minutes) of the viewer.
// @Tags        Events
// @Produce     json
// @Param       date path string true "YYYY-MM-DD or today"
// @Success     200 {object} loadResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/events/days/{date}/load [GET]
func (h *handler) Load(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.parseDate(c.Param("date"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.DailyLoad(ctx, middleware.GetScope(c), date)
	if err != nil {
		h.l.Errorf(ctx, "uc.DailyLoad: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoadResp(out))
}

// Blocks godoc
// @Summary     Automatic day blocks
// @Tags        Events
// @Produce     json
// @Param       date path string true "YYYY-MM-DD or today"
// @Success     200 {object} blocksResp
// @Router      /api/v1/events/days/{date}/blocks [GET]
func (h *handler) Blocks(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.parseDate(c.Param("date"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	blocks, err := h.uc.AutoBlocks(ctx, date)
	if err != nil {
		h.l.Errorf(ctx, "uc.AutoBlocks: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBlocksResp(h.dates.DateKey(date), blocks))
}

// ToggleHoliday godoc
// @Summary     Toggle the holiday flag of a day
// @Tags        Events
// @Produce     json
// @Param       date path string true "YYYY-MM-DD or today"
// @Success     200 {object} holidayResp
// @Router      /api/v1/events/days/{date}/holiday [POST]
func (h *handler) ToggleHoliday(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.parseDate(c.Param("date"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	holiday, err := h.uc.ToggleHoliday(ctx, date)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleHoliday: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, holidayResp{DateKey: h.dates.DateKey(date), Holiday: holiday})
}

// Tasks godoc
// @Summary     List tasks
// @Tags        Events
// @Produce     json
// @Param       filter query string false "undated (default), dated, recurring or all"
// @Success     200 {object} tasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/events/tasks [GET]
func (h *handler) Tasks(c *gin.Context) {
	ctx := c.Request.Context()

	filter := event.TaskFilter(c.DefaultQuery("filter", string(event.TaskFilterUndated)))
	items, err := h.uc.ListTasks(ctx, middleware.GetScope(c), filter)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, tasksResp{Filter: string(filter), Items: newItemsResp(items)})
}

// History godoc
// @Summary     Load history
// @Description Busy hours per day for the days ending at end, plus the work/free split of end.
// @Tags        Events
// @Produce     json
// @Param       end  query string false "YYYY-MM-DD (default today)"
// @Param       days query int    false "Number of days (default 30)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/events/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, end, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.LoadHistory(ctx, middleware.GetScope(c), end, req.Days)
	if err != nil {
		h.l.Errorf(ctx, "uc.LoadHistory: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(out))
}

// Suggest godoc
// @Summary     Suggest the most urgent task
// @Tags        Events
// @Produce     json
// @Param       date query string false "YYYY-MM-DD (default today)"
// @Success     200 {object} suggestResp
// @Router      /api/v1/events/suggest [GET]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.parseDate(c.Query("date"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SuggestNow(ctx, middleware.GetScope(c), date)
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestNow: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestResp(out))
}

// Export godoc
// @Summary     Export the viewer's calendar
// @Tags        Events
// @Produce     text/calendar
// @Success     200 {string} string "iCalendar document"
// @Router      /api/v1/events/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := h.uc.ExportICS(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="bnapp.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

// Import godoc
// @Summary     Import an iCalendar file
// @Tags        Events
// @Accept      text/calendar
// @Produce     json
// @Param       owner query string false "Owner of the imported items (default viewer)"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/events/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ImportICS(ctx, middleware.GetScope(c), model.Owner(c.Query("owner")), c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "uc.ImportICS: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, importResp{Created: newItemsResp(out.Created), Skipped: out.Skipped})
}
