package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcw-copilot/internal/middleware"
	"mcw-copilot/pkg/log"
	"mcw-copilot/pkg/telegram"
)

// recordingLogger keeps Infof lines and discards everything else.
type recordingLogger struct {
	log.Logger
	mu    sync.Mutex
	lines []string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{Logger: log.NewNop()}
}

func (r *recordingLogger) Infof(_ context.Context, template string, arg ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprintf(template, arg...))
}

func (r *recordingLogger) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handlers = append(handlers, func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.POST("/", handlers...)
	return engine
}

func do(engine *gin.Engine, header string) int {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if header != "" {
		req.Header.Set(telegram.SecretTokenHeader, header)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w.Code
}

func TestTelegramSecret(t *testing.T) {
	mw := middleware.New(log.NewNop(), "s3cret")
	engine := newEngine(mw.TelegramSecret())

	assert.Equal(t, http.StatusOK, do(engine, "s3cret"), "matching secret")
	assert.Equal(t, http.StatusUnauthorized, do(engine, "wrong"), "wrong secret")
	assert.Equal(t, http.StatusUnauthorized, do(engine, ""), "missing secret")
}

func TestTelegramSecret_Disabled(t *testing.T) {
	mw := middleware.New(log.NewNop(), "")
	engine := newEngine(mw.TelegramSecret())

	assert.Equal(t, http.StatusOK, do(engine, ""))
}

func TestRequestLog_SetsTraceID(t *testing.T) {
	mw := middleware.New(log.NewNop(), "")

	var traceID string
	engine := newEngine(mw.RequestLog(), func(c *gin.Context) {
		traceID = log.TraceIDFromContext(c.Request.Context())
	})

	require.Equal(t, http.StatusOK, do(engine, ""))
	assert.NotEmpty(t, traceID)
}

func TestRequestLog_Path(t *testing.T) {
	rec := newRecordingLogger()
	mw := middleware.New(rec, "")

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(mw.RequestLog())
	engine.GET("/chats/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/chats/42", "/no/such/route"} {
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	lines := rec.recorded()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "GET /chats/:id 200", "matched routes log the route template")
	assert.Contains(t, lines[1], "GET /no/such/route 404", "unmatched routes log the raw path")
}
