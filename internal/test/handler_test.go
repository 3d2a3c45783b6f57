package test_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcw-copilot/internal/router"
	"mcw-copilot/internal/test"
	"mcw-copilot/pkg/brain"
	"mcw-copilot/pkg/log"
)

func routeOnce(t *testing.T, text string) test.RouteResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := test.New(log.NewNop(), router.New(router.EmptyInputDelegate), brain.New(brain.Config{}, log.NewNop()))
	engine := gin.New()
	engine.POST("/test/route", h.HandleRoute)

	body, _ := json.Marshal(test.RouteRequest{Text: text})
	req := httptest.NewRequest(http.MethodPost, "/test/route", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp test.RouteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleRoute_Intent(t *testing.T) {
	resp := routeOnce(t, "Hello")

	assert.Equal(t, string(router.IntentGreeting), resp.Intent)
	assert.Equal(t, router.ReplyGreeting, resp.Reply)
	assert.False(t, resp.Delegated)
	assert.False(t, resp.BrainConfigured)
}

func TestHandleRoute_Delegated(t *testing.T) {
	resp := routeOnce(t, "  weekend snapshot ")

	assert.True(t, resp.Delegated)
	assert.Equal(t, "weekend snapshot", resp.Question)
	assert.Empty(t, resp.Intent)
}
