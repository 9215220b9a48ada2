package dayplan

import (
	"sort"

	"bnapp/internal/model"
)

// UrgencyScore maps an urgency to its rank; unknown or missing is 0.
func UrgencyScore(u model.Urgency) int {
	switch u {
	case model.UrgencyToday:
		return 3
	case model.UrgencyWeek:
		return 2
	case model.UrgencyMonth:
		return 1
	}
	return 0
}

// RankByUrgency returns a copy of items ordered from most to least urgent.
// Equal ranks keep their input order.
func RankByUrgency(items []model.Item) []model.Item {
	ranked := make([]model.Item, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return UrgencyScore(ranked[i].Urgency) > UrgencyScore(ranked[j].Urgency)
	})
	return ranked
}

// MostUrgent returns the first item of RankByUrgency(items).
func MostUrgent(items []model.Item) (model.Item, bool) {
	if len(items) == 0 {
		return model.Item{}, false
	}
	return RankByUrgency(items)[0], true
}
