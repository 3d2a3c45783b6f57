package brain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured indicates no endpoint URL was supplied at construction.
	ErrNotConfigured = errors.New("brain: endpoint not configured")

	// ErrNetwork covers connection failures, timeouts, DNS/TLS errors and
	// anything else that prevented a usable response from being read.
	ErrNetwork = errors.New("brain: endpoint unreachable")
)

// HTTPError is returned when the endpoint answered with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("brain: HTTP %d", e.StatusCode)
}

func networkError(err error) error {
	return fmt.Errorf("%w: %w", ErrNetwork, err)
}
