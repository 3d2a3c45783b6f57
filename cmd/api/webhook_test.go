package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastResolver() webhookResolver {
	r := newWebhookResolver()
	r.attempts = 3
	r.interval = 10 * time.Millisecond
	return r
}

func TestResolve_ConfiguredWins(t *testing.T) {
	url, err := fastResolver().resolve(context.Background(), "https://bot.example.com/webhook/telegram", "http://unused")
	require.NoError(t, err)
	assert.Equal(t, "https://bot.example.com/webhook/telegram", url)
}

func TestResolve_NothingConfigured(t *testing.T) {
	url, err := fastResolver().resolve(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestResolve_PrefersHTTPSTunnel(t *testing.T) {
	var calls atomic.Int32
	ngrok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tunnels", r.URL.Path)
		if calls.Add(1) == 1 {
			w.Write([]byte(`{"tunnels":[]}`))
			return
		}
		w.Write([]byte(`{"tunnels":[{"public_url":"http://abc.ngrok.io","proto":"http"},{"public_url":"https://abc.ngrok.io","proto":"https"}]}`))
	}))
	defer ngrok.Close()

	url, err := fastResolver().resolve(context.Background(), "", ngrok.URL)
	require.NoError(t, err)
	assert.Equal(t, "https://abc.ngrok.io/webhook/telegram", url)
	assert.Equal(t, int32(2), calls.Load())
}

func TestResolve_GivesUp(t *testing.T) {
	ngrok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tunnels":[]}`))
	}))
	defer ngrok.Close()

	_, err := fastResolver().resolve(context.Background(), "", ngrok.URL)
	assert.ErrorIs(t, err, errNoTunnel)
}
