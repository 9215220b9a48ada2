package model

import (
	"net/url"
	"strings"
)

// ItemType distinguishes calendar events from tasks.
type ItemType string

const (
	ItemTypeEvent ItemType = "event"
	ItemTypeTask  ItemType = "task"
)

// UndatedKey is the date key under which items without a date are stored.
const UndatedKey = "undated"

// Item is one calendar entry. Field names follow the realtime database layout.
type Item struct {
	ID              string     `json:"_id,omitempty"`
	DateKey         string     `json:"dateKey"`
	Type            ItemType   `json:"type"`
	Owner           Owner      `json:"owner"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	StartTime       string     `json:"startTime,omitempty"`
	EndTime         string     `json:"endTime,omitempty"`
	Duration        *int       `json:"duration,omitempty"`
	Address         string     `json:"address"`
	ReminderMinutes *int       `json:"reminderMinutes,omitempty"`
	Recurring       Recurrence `json:"recurring"`
	Urgency         Urgency    `json:"urgency"`
	MirrorID        string     `json:"mirrorId,omitempty"`
}

// IsTask reports whether the item is a task.
func (i Item) IsTask() bool {
	return i.Type == ItemTypeTask
}

// IsDated reports whether the item has a real date key.
func (i Item) IsDated() bool {
	return i.DateKey != "" && i.DateKey != UndatedKey
}

// IsRecurring reports whether the item repeats.
func (i Item) IsRecurring() bool {
	return i.Recurring != "" && i.Recurring != RecurrenceNone
}

// HasTime reports whether both wall-clock fields are present (not necessarily well-formed).
func (i Item) HasTime() bool {
	return i.StartTime != "" && i.EndTime != ""
}

// WazeURL returns a navigation link for address, or "" when it is empty.
func WazeURL(address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return ""
	}
	return "https://waze.com/ul?q=" + strings.ReplaceAll(url.QueryEscape(address), "+", "%20")
}
