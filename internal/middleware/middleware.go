package middleware

import (
	"crypto/subtle"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mcw-copilot/pkg/log"
	"mcw-copilot/pkg/response"
	"mcw-copilot/pkg/telegram"
)

// TelegramSecret rejects webhook calls that don't carry the secret token
// registered with setWebhook.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.telegramSecretToken == "" {
			c.Next()
			return
		}

		got := c.GetHeader(telegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.telegramSecretToken)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.TelegramSecret: rejected request from %s", c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestLog tags the request context with a trace ID and logs one line per request.
func (m Middleware) RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		ctx := log.WithTraceID(c.Request.Context(), uuid.NewString())
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		m.l.Infof(ctx, "%s %s %d %s", c.Request.Method, requestPath(c), c.Writer.Status(), time.Since(start))
	}
}

// requestPath prefers the route template; unmatched requests have none.
func requestPath(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return c.Request.URL.Path
}
