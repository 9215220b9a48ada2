package model

import "strings"

// Owner is the participant an item is attributed to.
type Owner string

const (
	OwnerBinyamin Owner = "binyamin"
	OwnerNana     Owner = "nana"
	OwnerShared   Owner = "shared"
)

// Participants returns the individual (non-shared) owners.
func Participants() []Owner {
	return []Owner{OwnerBinyamin, OwnerNana}
}

// ParseOwner normalizes s and reports whether it names a known owner.
func ParseOwner(s string) (Owner, bool) {
	o := Owner(strings.ToLower(strings.TrimSpace(s)))
	switch o {
	case OwnerBinyamin, OwnerNana, OwnerShared:
		return o, true
	}
	return "", false
}

// IsParticipant reports whether o is an individual viewer (not the shared marker).
func (o Owner) IsParticipant() bool {
	return o == OwnerBinyamin || o == OwnerNana
}

// Label is the Hebrew display name.
func (o Owner) Label() string {
	switch o {
	case OwnerShared:
		return "משותף"
	case OwnerBinyamin:
		return "בנימין"
	default:
		return "ננה"
	}
}

// Recipients expands an owner to the participants who should be notified.
func (o Owner) Recipients() []Owner {
	if o == OwnerShared || o == "" {
		return Participants()
	}
	return []Owner{o}
}
