package middleware

import (
	"mcw-copilot/pkg/log"
)

type Middleware struct {
	l                   log.Logger
	telegramSecretToken string
}

// New creates the HTTP middleware set. An empty telegramSecretToken disables
// the Telegram secret check.
func New(l log.Logger, telegramSecretToken string) Middleware {
	return Middleware{
		l:                   l,
		telegramSecretToken: telegramSecretToken,
	}
}
