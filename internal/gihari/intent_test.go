package gihari

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{text: "תוסיף לי פגישה מחר בשעה 10", want: IntentAddEvent},
		{text: "מתי יש לי זמן היום", want: IntentFreeTime},
		{text: "מה לעשות עכשיו", want: IntentSuggest},
		{text: "תן לי המלצה", want: IntentSuggest},
		{text: "תוסיף לי המלצה", want: IntentAddEvent},
		{text: "מה שלומך", want: IntentUnknown},
		{text: "", want: IntentUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("מתי, יש לי זמן."); got != "מתי  יש לי זמן " {
		t.Errorf("Normalize = %q", got)
	}
}

func TestSplitTitleAddress(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantTitle   string
		wantAddress string
	}{
		{name: "title and address", text: "תוסיף לי פגישה עם דני ברחוב הרצל 5", wantTitle: "פגישה עם דני", wantAddress: "ברחוב הרצל 5"},
		{name: "title only", text: "תוסיף לי ריצה", wantTitle: "ריצה"},
		{name: "empty title", text: "תוסיף לי", wantTitle: DefaultEventTitle},
		{name: "address right away", text: "תוסיף לי בבית", wantTitle: "בבית"},
		{name: "no phrase", text: "שלום", wantTitle: DefaultEventTitle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, address := SplitTitleAddress(tt.text)
			if title != tt.wantTitle || address != tt.wantAddress {
				t.Errorf("got (%q, %q), want (%q, %q)", title, address, tt.wantTitle, tt.wantAddress)
			}
		})
	}
}

func TestStripTags(t *testing.T) {
	if got := StripTags(`קבעתי "<strong>ריצה</strong>"`); got != `קבעתי "ריצה"` {
		t.Errorf("StripTags = %q", got)
	}
}
