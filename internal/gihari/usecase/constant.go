package usecase

// Reply texts.
const (
	msgNoGaps        = "להיום אין כמעט חורים – אתה עמוס כמו מעלית בבניין ישן 😅"
	msgFreeHeader    = "הזמנים הפנויים שלך היום:"
	msgNoTasks       = "אין לך משימות להיום 🙌"
	msgSuggest       = "ממליץ עכשיו לטפל ב־\"%s\" (דחיפות: %s)"
	msgEventAdded    = "קבעתי אירוע \"%s\" ב־%s בשעה %s"
	msgNotUnderstood = "לא לגמרי הבנתי, נסה לנסח שוב 😅"
)

// jokes open a reply when humor is on.
var jokes = []string{
	"יאללה גבר, סידרתי לך את זה. 😎",
	"עובד על זה כמו עבד יא מלך 🤣",
	"שנייה, מחדד את המוח… 🧠",
	"חכה חכה… אני יותר חכם ממך 😉",
}

const (
	defaultEventHour = 17
	eventLengthHours = 2
	lastEventHour    = 23
)
