package gihari

import (
	"bnapp/internal/dayplan"
	"bnapp/internal/model"
)

// Source names the channel a command arrived on.
type Source string

const (
	SourceHTTP     Source = "http"
	SourceTelegram Source = "telegram"
)

// ReplyOptions tunes the reply text.
type ReplyOptions struct {
	// NoHumor drops the random opening line.
	NoHumor bool
}

// CommandInput is one free-text command.
type CommandInput struct {
	Text   string
	Source Source
	ReplyOptions
}

// Reply is the assistant's answer. Text is plain text; Humor, when set, is
// meant to be shown on its own line before it.
type Reply struct {
	Intent     Intent
	Humor      string
	Text       string
	Item       *model.Item
	FreeRanges []string
}

// String renders the reply for text channels.
func (r Reply) String() string {
	if r.Humor == "" {
		return r.Text
	}
	return r.Humor + "\n" + r.Text
}

// SummaryOutput is the viewer's load overview for today.
type SummaryOutput struct {
	DateKey     string
	BusyMinutes int
	BusyHours   int
	Level       dayplan.Level
	FreeSlots   int
}
