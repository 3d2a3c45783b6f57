package router

// Canned replies
const (
	ReplyGreeting = "Hello! I’m your MCW Co-Pilot. Try:\n" +
		"• “What’s Tampa utilization this week?”\n" +
		"• “Weekend snapshot”"

	ReplyHelp = "I can analyze Mothership data, send weekly snapshots, and more. " +
		"Try: “Weekend snapshot”."

	ReplyWelcome = "Hi! I’m online. Say “help” to see examples."

	ReplyEmptyPrompt = "Send me a question, or say “help” to see examples."
)

// EmptyInputPolicy decides what happens to a turn that is blank after trimming.
type EmptyInputPolicy string

const (
	// EmptyInputDelegate passes blank turns on to the answering service.
	EmptyInputDelegate EmptyInputPolicy = "delegate"
	// EmptyInputPrompt answers blank turns locally with ReplyEmptyPrompt.
	EmptyInputPrompt EmptyInputPolicy = "prompt"
)
