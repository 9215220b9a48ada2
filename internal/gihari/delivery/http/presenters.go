package http

import (
	"bnapp/internal/gihari"
	"bnapp/internal/model"
)

type commandReq struct {
	Text    string `json:"text" binding:"required,max=500"`
	NoHumor bool   `json:"noHumor"`
}

func (r commandReq) toInput() gihari.CommandInput {
	return gihari.CommandInput{
		Text:         r.Text,
		Source:       gihari.SourceHTTP,
		ReplyOptions: gihari.ReplyOptions{NoHumor: r.NoHumor},
	}
}

type replyOptionsReq struct {
	NoHumor bool `form:"noHumor"`
}

func (r replyOptionsReq) toOptions() gihari.ReplyOptions {
	return gihari.ReplyOptions{NoHumor: r.NoHumor}
}

type itemResp struct {
	ID        string `json:"id"`
	DateKey   string `json:"dateKey"`
	Title     string `json:"title"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Urgency   string `json:"urgency,omitempty"`
}

type replyResp struct {
	Intent     string    `json:"intent"`
	Humor      string    `json:"humor,omitempty"`
	Text       string    `json:"text"`
	Item       *itemResp `json:"item,omitempty"`
	FreeRanges []string  `json:"freeRanges,omitempty"`
}

func newReplyResp(r gihari.Reply) replyResp {
	resp := replyResp{
		Intent:     string(r.Intent),
		Humor:      r.Humor,
		Text:       r.Text,
		FreeRanges: r.FreeRanges,
	}
	if r.Item != nil {
		resp.Item = newItemResp(*r.Item)
	}
	return resp
}

func newItemResp(it model.Item) *itemResp {
	return &itemResp{
		ID:        it.ID,
		DateKey:   it.DateKey,
		Title:     it.Title,
		StartTime: it.StartTime,
		EndTime:   it.EndTime,
		Urgency:   string(it.Urgency),
	}
}

type summaryResp struct {
	DateKey     string `json:"dateKey"`
	BusyMinutes int    `json:"busyMinutes"`
	BusyHours   int    `json:"busyHours"`
	Level       string `json:"level"`
	LevelLabel  string `json:"levelLabel"`
	FreeSlots   int    `json:"freeSlots"`
}

func newSummaryResp(out gihari.SummaryOutput) summaryResp {
	return summaryResp{
		DateKey:     out.DateKey,
		BusyMinutes: out.BusyMinutes,
		BusyHours:   out.BusyHours,
		Level:       string(out.Level),
		LevelLabel:  out.Level.Label(),
		FreeSlots:   out.FreeSlots,
	}
}
