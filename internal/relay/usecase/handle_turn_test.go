package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mcw-copilot/internal/relay"
	"mcw-copilot/internal/relay/usecase"
	"mcw-copilot/internal/router"
	"mcw-copilot/pkg/brain"
	"mcw-copilot/pkg/log"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockBrain struct {
	mu        sync.Mutex
	questions []string
	result    brain.Result
	panicWith any
}

func (m *mockBrain) Ask(ctx context.Context, question string) brain.Result {
	m.mu.Lock()
	m.questions = append(m.questions, question)
	m.mu.Unlock()
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	return m.result
}

func (m *mockBrain) Configured() bool { return true }

type mockRecorder struct {
	mu       sync.Mutex
	turns    []string
	outcomes []string
}

func (m *mockRecorder) ObserveTurn(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = append(m.turns, source)
}

func (m *mockRecorder) ObserveBrainCall(outcome string, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

func newUseCase(b brain.IBrain, rec *mockRecorder) relay.UseCase {
	return usecase.New(log.NewNop(), router.New(router.EmptyInputDelegate), b, rec)
}

func turn(text string) relay.IncomingTurn {
	return relay.IncomingTurn{Text: text, ChatID: "chat-1", TurnID: "turn-1"}
}

// ── Intent fast path ───────────────────────────────────────────────────────

func TestHandleTurn_IntentsSkipBrain(t *testing.T) {
	mb := &mockBrain{}
	rec := &mockRecorder{}
	uc := newUseCase(mb, rec)

	for _, text := range []string{"hi", "Hello", "HELP", "  hello  "} {
		reply := uc.HandleTurn(context.Background(), turn(text))
		assert.Equal(t, relay.SourceIntent, reply.Source, text)
		assert.NotEmpty(t, reply.Text)
	}

	assert.Empty(t, mb.questions)
	assert.Equal(t, []string{"intent", "intent", "intent", "intent"}, rec.turns)
	assert.Empty(t, rec.outcomes)
}

func TestHandleTurn_DelegatesTrimmedText(t *testing.T) {
	mb := &mockBrain{result: brain.Result{Kind: brain.KindAnswer, Text: "82%"}}
	rec := &mockRecorder{}
	uc := newUseCase(mb, rec)

	reply := uc.HandleTurn(context.Background(), turn("  What’s Tampa utilization this week?\n"))

	assert.Equal(t, relay.OutgoingReply{Text: "82%", Source: relay.SourceBrain}, reply)
	assert.Equal(t, []string{"What’s Tampa utilization this week?"}, mb.questions)
	assert.Equal(t, []string{"answer"}, rec.outcomes)
}

func TestHandleTurn_EmptyInputIsDelegated(t *testing.T) {
	mb := &mockBrain{result: brain.Result{Kind: brain.KindRawText, Text: "what would you like to know?"}}
	uc := newUseCase(mb, &mockRecorder{})

	reply := uc.HandleTurn(context.Background(), turn("   "))

	assert.Equal(t, relay.SourceBrain, reply.Source)
	assert.Equal(t, []string{""}, mb.questions)
}

func TestHandleTurn_EmptyInputPromptPolicy(t *testing.T) {
	mb := &mockBrain{}
	uc := usecase.New(log.NewNop(), router.New(router.EmptyInputPrompt), mb, nil)

	reply := uc.HandleTurn(context.Background(), turn(""))

	assert.Equal(t, router.ReplyEmptyPrompt, reply.Text)
	assert.Empty(t, mb.questions)
}

// ── Result mapping ─────────────────────────────────────────────────────────

func TestHandleTurn_ResultMapping(t *testing.T) {
	tests := []struct {
		name    string
		result  brain.Result
		want    relay.OutgoingReply
		outcome string
	}{
		{
			name:    "raw text",
			result:  brain.Result{Kind: brain.KindRawText, Text: "plain ok"},
			want:    relay.OutgoingReply{Text: "plain ok", Source: relay.SourceBrain},
			outcome: "raw_text",
		},
		{
			name:    "blank answer",
			result:  brain.Result{Kind: brain.KindAnswer, Text: "  "},
			want:    relay.OutgoingReply{Text: relay.MsgEmptyAnswer, Source: relay.SourceFallback},
			outcome: "answer",
		},
		{
			name:    "not configured",
			result:  brain.Result{Kind: brain.KindError, Err: brain.ErrNotConfigured},
			want:    relay.OutgoingReply{Text: relay.MsgNotConfigured, Source: relay.SourceFallback},
			outcome: "not_configured",
		},
		{
			name:    "http error",
			result:  brain.Result{Kind: brain.KindError, Err: &brain.HTTPError{StatusCode: 502}},
			want:    relay.OutgoingReply{Text: "I couldn't reach the service (HTTP 502).", Source: relay.SourceFallback},
			outcome: "http_error",
		},
		{
			name:    "network error",
			result:  brain.Result{Kind: brain.KindError, Err: brain.ErrNetwork},
			want:    relay.OutgoingReply{Text: relay.MsgUnreachable, Source: relay.SourceFallback},
			outcome: "network_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &mockRecorder{}
			uc := newUseCase(&mockBrain{result: tt.result}, rec)

			reply := uc.HandleTurn(context.Background(), turn("question"))

			assert.Equal(t, tt.want, reply)
			assert.Equal(t, []string{tt.outcome}, rec.outcomes)
			assert.Equal(t, []string{string(tt.want.Source)}, rec.turns)
		})
	}
}

func TestHandleTurn_PanicBecomesHandlerError(t *testing.T) {
	rec := &mockRecorder{}
	uc := newUseCase(&mockBrain{panicWith: "boom"}, rec)

	reply := uc.HandleTurn(context.Background(), turn("question"))

	assert.Equal(t, relay.OutgoingReply{Text: relay.MsgHandlerError, Source: relay.SourceFallback}, reply)
	assert.Equal(t, []string{"fallback"}, rec.turns)
}

func TestWelcome(t *testing.T) {
	uc := newUseCase(&mockBrain{}, &mockRecorder{})

	reply := uc.Welcome(context.Background())

	assert.Equal(t, router.ReplyWelcome, reply.Text)
	assert.Equal(t, relay.SourceIntent, reply.Source)
}

// ── End to end against an HTTP endpoint ────────────────────────────────────

func TestHandleTurn_AgainstEndpoint(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var q brain.Query
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&q))
		mu.Lock()
		calls = append(calls, q.UserQuestion)
		mu.Unlock()

		switch {
		case strings.Contains(q.UserQuestion, "meaning"):
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"answer":"42"}`))
		case strings.Contains(q.UserQuestion, "broken"):
			w.WriteHeader(http.StatusInternalServerError)
		case strings.Contains(q.UserQuestion, "slow"):
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		default:
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte("plain ok"))
		}
	}))
	defer ts.Close()

	b := brain.New(brain.Config{URL: ts.URL, Timeout: 100 * time.Millisecond}, log.NewNop())
	uc := newUseCase(b, &mockRecorder{})
	ctx := context.Background()

	assert.Equal(t, "42", uc.HandleTurn(ctx, turn("meaning of life?")).Text)
	assert.Contains(t, uc.HandleTurn(ctx, turn("broken workflow")).Text, "500")
	assert.Equal(t, relay.MsgUnreachable, uc.HandleTurn(ctx, turn("slow one")).Text)
	assert.Equal(t, "plain ok", uc.HandleTurn(ctx, turn("anything else")).Text)
	assert.Equal(t, router.ReplyHelp, uc.HandleTurn(ctx, turn("help")).Text)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"meaning of life?", "broken workflow", "slow one", "anything else"}, calls)
}

func TestHandleTurn_NotConfiguredEndpoint(t *testing.T) {
	uc := newUseCase(brain.New(brain.Config{}, log.NewNop()), &mockRecorder{})

	reply := uc.HandleTurn(context.Background(), turn("anything"))

	assert.Equal(t, relay.MsgNotConfigured, reply.Text)
}
