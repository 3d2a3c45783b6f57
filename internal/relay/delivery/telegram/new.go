package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"mcw-copilot/internal/relay"
	"mcw-copilot/pkg/guard"
	pkgLog "mcw-copilot/pkg/log"
	pkgTelegram "mcw-copilot/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
	// Wait blocks until every accepted turn has been answered or ctx is done.
	Wait(ctx context.Context) error
}

// New creates a new Telegram delivery handler. limiter and deduper may be nil.
func New(
	l pkgLog.Logger,
	uc relay.UseCase,
	bot *pkgTelegram.Bot,
	limiter *guard.RateLimiter,
	deduper *guard.Deduper,
) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		bot:     bot,
		limiter: limiter,
		deduper: deduper,
	}
}
