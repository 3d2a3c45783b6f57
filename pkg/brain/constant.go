package brain

import "time"

const (
	// DefaultTimeout bounds a single call to the answering service.
	DefaultTimeout = 15 * time.Second

	// EmptyAnswerPlaceholder is returned when the service answers 2xx with an empty text body.
	EmptyAnswerPlaceholder = "(empty answer from the service)"

	// maxLoggedBody caps how much of a response body goes into the logs.
	maxLoggedBody = 2048
)

// Log prefixes
const (
	LogPrefixAsk = "pkg.brain.Ask"
)
