package router

import "strings"

// Route is a pure function of text: trimmed, case-folded, exact match.
func (r *KeywordRouter) Route(text string) (Match, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	if normalized == "" {
		if r.emptyInput == EmptyInputPrompt {
			return Match{Intent: IntentEmpty, Reply: replies[IntentEmpty]}, true
		}
		return Match{}, false
	}

	intent, ok := keywords[normalized]
	if !ok {
		return Match{}, false
	}
	return Match{Intent: intent, Reply: replies[intent]}, true
}

// Welcome returns the greeting sent when a user joins a conversation.
func (r *KeywordRouter) Welcome() Match {
	return Match{Intent: IntentWelcome, Reply: replies[IntentWelcome]}
}
