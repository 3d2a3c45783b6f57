package router

// Intent represents a recognized canned intent.
type Intent string

const (
	IntentGreeting Intent = "GREETING"
	IntentHelp     Intent = "HELP"
	IntentWelcome  Intent = "WELCOME"
	IntentEmpty    Intent = "EMPTY"
)

// Match is the fast-path result of routing a turn.
type Match struct {
	Intent Intent
	Reply  string
}

// keywords maps normalized text to its intent. Telegram command forms are
// included so /start and /help behave like their plain-text counterparts.
var keywords = map[string]Intent{
	"hi":     IntentGreeting,
	"hello":  IntentGreeting,
	"help":   IntentHelp,
	"/help":  IntentHelp,
	"/start": IntentWelcome,
}

var replies = map[Intent]string{
	IntentGreeting: ReplyGreeting,
	IntentHelp:     ReplyHelp,
	IntentWelcome:  ReplyWelcome,
	IntentEmpty:    ReplyEmptyPrompt,
}
