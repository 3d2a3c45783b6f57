package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	webhookPath        = "/webhook/telegram"
	ngrokPollAttempts  = 10
	ngrokPollInterval  = 3 * time.Second
	ngrokClientTimeout = 5 * time.Second
)

var errNoTunnel = errors.New("ngrok has no active tunnels")

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// webhookResolver finds the public URL Telegram should call.
type webhookResolver struct {
	client   *http.Client
	attempts int
	interval time.Duration
}

func newWebhookResolver() webhookResolver {
	return webhookResolver{
		client:   &http.Client{Timeout: ngrokClientTimeout},
		attempts: ngrokPollAttempts,
		interval: ngrokPollInterval,
	}
}

// resolve returns configured when set. Otherwise it asks the ngrok API at
// ngrokAPI for a tunnel and appends the webhook path. An empty result means
// no webhook should be registered.
func (r webhookResolver) resolve(ctx context.Context, configured, ngrokAPI string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	if ngrokAPI == "" {
		return "", nil
	}

	base, err := r.detectTunnel(ctx, strings.TrimRight(ngrokAPI, "/")+"/api/tunnels")
	if err != nil {
		return "", err
	}
	return strings.TrimRight(base, "/") + webhookPath, nil
}

// detectTunnel polls until ngrok reports a tunnel, preferring HTTPS. ngrok
// usually starts alongside the relay and needs a few seconds.
func (r webhookResolver) detectTunnel(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		publicURL, err := r.fetchTunnel(ctx, url)
		if err == nil {
			return publicURL, nil
		}
		lastErr = err

		if attempt == r.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(r.interval):
		}
	}
	return "", fmt.Errorf("ngrok: no tunnel after %d attempts: %w", r.attempts, lastErr)
}

func (r webhookResolver) fetchTunnel(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", errNoTunnel
}
