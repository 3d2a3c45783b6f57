package router

// Router decides whether a turn can be answered locally.
type Router interface {
	// Route returns the canned reply for text, or false when the turn
	// should be delegated to the answering service.
	Route(text string) (Match, bool)

	// Welcome returns the greeting sent when a user joins a conversation.
	Welcome() Match
}

// KeywordRouter matches a small closed set of keywords.
type KeywordRouter struct {
	emptyInput EmptyInputPolicy
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter. An unknown policy falls back to EmptyInputDelegate.
func New(emptyInput EmptyInputPolicy) *KeywordRouter {
	if emptyInput != EmptyInputPrompt {
		emptyInput = EmptyInputDelegate
	}
	return &KeywordRouter{emptyInput: emptyInput}
}
