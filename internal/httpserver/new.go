package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mcw-copilot/internal/middleware"
	relayHTTP "mcw-copilot/internal/relay/delivery/http"
	tgDelivery "mcw-copilot/internal/relay/delivery/telegram"
	"mcw-copilot/internal/test"
	"mcw-copilot/pkg/brain"
	"mcw-copilot/pkg/log"
)

const defaultShutdownTimeout = 20 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	middleware middleware.Middleware
	metrics    http.Handler
	brain      brain.IBrain

	// Relay domain
	telegramHandler tgDelivery.Handler
	activityHandler relayHTTP.Handler

	// Test domain
	testHandler test.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Middleware middleware.Middleware
	// Metrics serves /metrics when set.
	Metrics http.Handler
	// Brain is reported on /ready when set.
	Brain brain.IBrain

	// Relay domain
	TelegramHandler tgDelivery.Handler
	ActivityHandler relayHTTP.Handler

	// Test domain, not mounted in production
	TestHandler test.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: shutdownTimeout,
		middleware:      cfg.Middleware,
		metrics:         cfg.Metrics,
		brain:           cfg.Brain,
		telegramHandler: cfg.TelegramHandler,
		activityHandler: cfg.ActivityHandler,
		testHandler:     cfg.TestHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
