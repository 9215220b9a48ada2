package http

import (
	"bnapp/internal/dayplan"
	"bnapp/internal/event"
	"bnapp/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Type            string `json:"type"`
	Owner           string `json:"owner"`
	Title           string `json:"title" binding:"required,max=255"`
	Description     string `json:"description" binding:"max=2000"`
	DateKey         string `json:"dateKey"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Duration        *int   `json:"duration" binding:"omitempty,min=0"`
	Address         string `json:"address" binding:"max=500"`
	ReminderMinutes *int   `json:"reminderMinutes" binding:"omitempty,min=0"`
	Recurring       string `json:"recurring"`
	Urgency         string `json:"urgency"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() event.CreateInput {
	return event.CreateInput{
		Type:            model.ItemType(r.Type),
		Owner:           model.Owner(r.Owner),
		Title:           r.Title,
		Description:     r.Description,
		DateKey:         r.DateKey,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Duration:        r.Duration,
		Address:         r.Address,
		ReminderMinutes: r.ReminderMinutes,
		Recurring:       model.Recurrence(r.Recurring),
		Urgency:         model.Urgency(r.Urgency),
	}
}

// ---

type updateReq struct {
	DateKey string `json:"-"` // populated from URI param
	ID      string `json:"-"` // populated from URI param

	NewDateKey      *string `json:"dateKey"`
	Type            *string `json:"type"`
	Owner           *string `json:"owner"`
	Title           *string `json:"title" binding:"omitempty,max=255"`
	Description     *string `json:"description" binding:"omitempty,max=2000"`
	StartTime       *string `json:"startTime"`
	EndTime         *string `json:"endTime"`
	Duration        *int    `json:"duration" binding:"omitempty,min=0"`
	Address         *string `json:"address" binding:"omitempty,max=500"`
	ReminderMinutes *int    `json:"reminderMinutes" binding:"omitempty,min=0"`
	Recurring       *string `json:"recurring"`
	Urgency         *string `json:"urgency"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() event.UpdateInput {
	in := event.UpdateInput{
		DateKey:         r.DateKey,
		ID:              r.ID,
		NewDateKey:      r.NewDateKey,
		Title:           r.Title,
		Description:     r.Description,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Duration:        r.Duration,
		Address:         r.Address,
		ReminderMinutes: r.ReminderMinutes,
	}
	if r.Type != nil {
		v := model.ItemType(*r.Type)
		in.Type = &v
	}
	if r.Owner != nil {
		v := model.Owner(*r.Owner)
		in.Owner = &v
	}
	if r.Recurring != nil {
		v := model.Recurrence(*r.Recurring)
		in.Recurring = &v
	}
	if r.Urgency != nil {
		v := model.Urgency(*r.Urgency)
		in.Urgency = &v
	}
	return in
}

// ---

type rangeReq struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

type historyReq struct {
	End  string `form:"end"`
	Days int    `form:"days" binding:"omitempty,min=1,max=366"`
}

// --- Response DTOs ---

type itemResp struct {
	ID              string `json:"id"`
	DateKey         string `json:"dateKey"`
	Type            string `json:"type"`
	Owner           string `json:"owner"`
	OwnerLabel      string `json:"ownerLabel"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	StartTime       string `json:"startTime,omitempty"`
	EndTime         string `json:"endTime,omitempty"`
	Duration        *int   `json:"duration,omitempty"`
	Address         string `json:"address"`
	ReminderMinutes *int   `json:"reminderMinutes,omitempty"`
	Recurring       string `json:"recurring"`
	Urgency         string `json:"urgency"`
	UrgencyLabel    string `json:"urgencyLabel"`
	WazeURL         string `json:"wazeUrl,omitempty"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:              it.ID,
		DateKey:         it.DateKey,
		Type:            string(it.Type),
		Owner:           string(it.Owner),
		OwnerLabel:      it.Owner.Label(),
		Title:           it.Title,
		Description:     it.Description,
		StartTime:       it.StartTime,
		EndTime:         it.EndTime,
		Duration:        it.Duration,
		Address:         it.Address,
		ReminderMinutes: it.ReminderMinutes,
		Recurring:       string(it.Recurring),
		Urgency:         string(it.Urgency),
		UrgencyLabel:    it.Urgency.Label(),
		WazeURL:         model.WazeURL(it.Address),
	}
}

func newItemsResp(items []model.Item) []itemResp {
	out := make([]itemResp, len(items))
	for i, it := range items {
		out[i] = newItemResp(it)
	}
	return out
}

type dayResp struct {
	DateKey string     `json:"dateKey"`
	Holiday bool       `json:"holiday"`
	Items   []itemResp `json:"items"`
}

func (h *handler) newDayResp(out event.DayOutput) dayResp {
	return dayResp{DateKey: out.DateKey, Holiday: out.Holiday, Items: newItemsResp(out.Items)}
}

type rangeResp struct {
	Days []dayResp `json:"days"`
}

func (h *handler) newRangeResp(days []event.DayOutput) rangeResp {
	out := make([]dayResp, len(days))
	for i, d := range days {
		out[i] = h.newDayResp(d)
	}
	return rangeResp{Days: out}
}

type tasksResp struct {
	Filter string     `json:"filter"`
	Items  []itemResp `json:"items"`
}

type intervalResp struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

func newIntervalsResp(ivs []dayplan.Interval) []intervalResp {
	out := make([]intervalResp, len(ivs))
	for i, iv := range ivs {
		out[i] = intervalResp{Start: iv.Start, End: iv.End, Label: dayplan.FormatRange(iv)}
	}
	return out
}

type loadResp struct {
	DateKey          string         `json:"dateKey"`
	TotalBusyMinutes int            `json:"totalBusyMinutes"`
	Level            string         `json:"level"`
	Busy             []intervalResp `json:"busy"`
	FreeSlots        []intervalResp `json:"freeSlots"`
}

func (h *handler) newLoadResp(out event.LoadOutput) loadResp {
	return loadResp{
		DateKey:          out.DateKey,
		TotalBusyMinutes: out.Summary.TotalBusyMinutes,
		Level:            string(out.Level),
		Busy:             newIntervalsResp(out.Summary.Busy),
		FreeSlots:        newIntervalsResp(out.Summary.FreeSlots),
	}
}

type dayLoadResp struct {
	DateKey   string  `json:"dateKey"`
	BusyHours float64 `json:"busyHours"`
}

type historyResp struct {
	Days      []dayLoadResp `json:"days"`
	WorkHours float64       `json:"workHours"`
	FreeHours float64       `json:"freeHours"`
}

func (h *handler) newHistoryResp(out event.HistoryOutput) historyResp {
	days := make([]dayLoadResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = dayLoadResp{DateKey: d.DateKey, BusyHours: d.BusyHours}
	}
	return historyResp{Days: days, WorkHours: out.WorkHours, FreeHours: out.FreeHours}
}

type suggestResp struct {
	Found  bool       `json:"found"`
	Top    *itemResp  `json:"top,omitempty"`
	Ranked []itemResp `json:"ranked"`
}

func (h *handler) newSuggestResp(out event.SuggestOutput) suggestResp {
	resp := suggestResp{Found: out.Found, Ranked: newItemsResp(out.Ranked)}
	if out.Found {
		top := newItemResp(out.Top)
		resp.Top = &top
	}
	return resp
}

type blockResp struct {
	Label string `json:"label"`
	Range string `json:"range"`
	Type  string `json:"type"`
}

type blocksResp struct {
	DateKey string      `json:"dateKey"`
	Blocks  []blockResp `json:"blocks"`
}

func (h *handler) newBlocksResp(dk string, blocks []event.Block) blocksResp {
	out := make([]blockResp, len(blocks))
	for i, b := range blocks {
		out[i] = blockResp{Label: b.Label, Range: b.Range, Type: string(b.Type)}
	}
	return blocksResp{DateKey: dk, Blocks: out}
}

type holidayResp struct {
	DateKey string `json:"dateKey"`
	Holiday bool   `json:"holiday"`
}

type importResp struct {
	Created []itemResp `json:"created"`
	Skipped int        `json:"skipped"`
}
