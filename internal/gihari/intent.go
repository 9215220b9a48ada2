package gihari

import (
	"regexp"
	"strings"
)

// Intent is what a command asks for.
type Intent string

const (
	IntentAddEvent Intent = "add_event"
	IntentFreeTime Intent = "free_time"
	IntentSuggest  Intent = "suggest"
	IntentUnknown  Intent = "unknown"
)

// Trigger phrases, checked in this order.
const (
	PhraseAddEvent = "תוסיף לי"
	PhraseFreeTime = "מתי יש לי זמן"
	PhraseWhatToDo = "מה לעשות"
	PhraseSuggest  = "המלצה"
)

// DefaultEventTitle is used when an add command names nothing.
const DefaultEventTitle = "אירוע"

var punctuation = strings.NewReplacer(".", " ", ",", " ")

// Normalize turns periods and commas into spaces, as speech transcripts
// punctuate freely.
func Normalize(text string) string {
	return punctuation.Replace(text)
}

// Classify picks the intent of normalized text.
func Classify(text string) Intent {
	switch {
	case strings.Contains(text, PhraseAddEvent):
		return IntentAddEvent
	case strings.Contains(text, PhraseFreeTime):
		return IntentFreeTime
	case strings.Contains(text, PhraseWhatToDo), strings.Contains(text, PhraseSuggest):
		return IntentSuggest
	}
	return IntentUnknown
}

// SplitTitleAddress reads the words after PhraseAddEvent: the title runs up
// to the first word starting with ב, and the rest is the address.
func SplitTitleAddress(text string) (title, address string) {
	idx := strings.Index(text, PhraseAddEvent)
	if idx < 0 {
		return DefaultEventTitle, ""
	}
	after := strings.TrimSpace(text[idx+len(PhraseAddEvent):])
	if b := strings.Index(after, " ב"); b >= 0 {
		title = strings.TrimSpace(after[:b])
		address = strings.TrimSpace(after[b+1:])
	} else {
		title = after
	}
	if title == "" {
		title = DefaultEventTitle
	}
	return title, address
}

var tags = regexp.MustCompile(`<[^>]+>`)

// StripTags removes HTML tags from s.
func StripTags(s string) string {
	return tags.ReplaceAllString(s, "")
}
