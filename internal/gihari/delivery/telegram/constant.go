package telegram

const (
	cmdStart    = "/start"
	cmdHelp     = "/help"
	cmdSummary  = "/summary"
	cmdSuggest  = "/suggest"
	cmdFreeTime = "/free"
)

const (
	msgHelp = "שלום, אני ג'יהרי 👋\n" +
		"אפשר לכתוב לי:\n" +
		"• תוסיף לי <כותרת> מחר בשעה 10\n" +
		"• מתי יש לי זמן\n" +
		"• מה לעשות\n\n" +
		"פקודות: /summary /suggest /free"
	msgSummary       = "עומס להיום: %d שעות (%s)\nחלונות פנויים: %d"
	msgFailed        = "משהו השתבש, נסה שוב בעוד רגע 🙏"
	msgNotRegistered = "הצ'אט הזה לא מחובר לאף משתמש."
)
