package brain

import (
	"context"
	"net/http"
	"strings"

	"mcw-copilot/pkg/log"
)

// IBrain is the answering service client.
// Implementations are safe for concurrent use.
type IBrain interface {
	// Ask posts the question and normalizes whatever comes back.
	// It never returns a bare error: failures are reported as a KindError Result.
	Ask(ctx context.Context, question string) Result

	// Configured reports whether an endpoint URL was supplied.
	Configured() bool
}

// New creates a client for cfg. An empty URL is accepted; every Ask then
// resolves to ErrNotConfigured without touching the network.
func New(cfg Config, l log.Logger) IBrain {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	url := strings.TrimSpace(cfg.URL)

	return &brainImpl{
		l:          l,
		url:        url,
		timeout:    timeout,
		configured: url != "",
		httpClient: httpClient,
	}
}
