package model

// Urgency ranks tasks for recommendation.
type Urgency string

const (
	UrgencyToday Urgency = "today"
	UrgencyWeek  Urgency = "week"
	UrgencyMonth Urgency = "month"
	UrgencyNone  Urgency = "none"
)

// Valid reports whether u is one of the known urgencies.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyToday, UrgencyWeek, UrgencyMonth, UrgencyNone:
		return true
	}
	return false
}

// Label is the Hebrew display name; unknown values render as-is.
func (u Urgency) Label() string {
	switch u {
	case UrgencyToday:
		return "היום"
	case UrgencyWeek:
		return "השבוע"
	case UrgencyMonth:
		return "החודש"
	case UrgencyNone, "":
		return "לא דחוף"
	}
	return string(u)
}

// Recurrence is how often an item repeats.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

// Valid reports whether r is one of the known recurrences.
func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}
