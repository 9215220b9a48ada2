package event

import (
	"bnapp/internal/dayplan"
	"bnapp/internal/model"
)

// --- UseCase Inputs ---

// CreateInput carries the fields of a new item. Optional numbers are nil when unset.
type CreateInput struct {
	Type            model.ItemType
	Owner           model.Owner
	Title           string
	Description     string
	DateKey         string
	StartTime       string
	EndTime         string
	Duration        *int
	Address         string
	ReminderMinutes *int
	Recurring       model.Recurrence
	Urgency         model.Urgency
}

// UpdateInput is a partial update. Nil pointers keep the stored value.
type UpdateInput struct {
	DateKey string
	ID      string

	NewDateKey      *string
	Type            *model.ItemType
	Owner           *model.Owner
	Title           *string
	Description     *string
	StartTime       *string
	EndTime         *string
	Duration        *int
	Address         *string
	ReminderMinutes *int
	Recurring       *model.Recurrence
	Urgency         *model.Urgency
}

// TaskFilter selects which tasks ListTasks returns.
type TaskFilter string

const (
	TaskFilterUndated   TaskFilter = "undated"
	TaskFilterDated     TaskFilter = "dated"
	TaskFilterRecurring TaskFilter = "recurring"
	TaskFilterAll       TaskFilter = "all"
)

// Valid reports whether f is a known filter.
func (f TaskFilter) Valid() bool {
	switch f {
	case TaskFilterUndated, TaskFilterDated, TaskFilterRecurring, TaskFilterAll:
		return true
	}
	return false
}

// --- UseCase Outputs ---

type DayOutput struct {
	DateKey string
	Holiday bool
	Items   []model.Item
}

type LoadOutput struct {
	DateKey    string
	Summary    dayplan.Summary
	Level      dayplan.Level
	FreeRanges []string
}

// DayLoad is one bar of the load history.
type DayLoad struct {
	DateKey   string
	BusyHours float64
}

type HistoryOutput struct {
	Days      []DayLoad
	WorkHours float64
	FreeHours float64
}

type SuggestOutput struct {
	Found  bool
	Top    model.Item
	Ranked []model.Item
}

// BlockType classifies an automatic daily block.
type BlockType string

const (
	BlockSleep   BlockType = "sleep"
	BlockWork    BlockType = "work"
	BlockMeal    BlockType = "meal"
	BlockHoliday BlockType = "holiday"
)

// Block is a fixed routine period shown alongside a day's items.
type Block struct {
	Label string
	Range string
	Type  BlockType
}

type ImportOutput struct {
	Created []model.Item
	Skipped int
}

// BusyDayHours is the waking budget the work/free split is measured against.
const BusyDayHours = 14.0

// DefaultHistoryDays is the span of LoadHistory when the caller passes 0.
const DefaultHistoryDays = 30

// MaxRangeDays bounds ListRange.
const MaxRangeDays = 62
