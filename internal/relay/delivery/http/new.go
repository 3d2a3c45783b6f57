package http

import (
	"github.com/gin-gonic/gin"

	"mcw-copilot/internal/relay"
	"mcw-copilot/pkg/guard"
	"mcw-copilot/pkg/log"
)

// Handler is the public interface for the activity HTTP delivery layer.
type Handler interface {
	Messages(c *gin.Context)
}

type handler struct {
	l       log.Logger
	uc      relay.UseCase
	limiter *guard.RateLimiter
}

// New creates a new HTTP handler for chat activities. Message activities are
// throttled per client IP; a nil limiter disables throttling.
func New(l log.Logger, uc relay.UseCase, limiter *guard.RateLimiter) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		limiter: limiter,
	}
}
