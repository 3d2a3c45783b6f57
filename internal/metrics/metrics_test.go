package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcw-copilot/internal/metrics"
)

func TestPrometheus_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveTurn("intent")
	m.ObserveTurn("brain")
	m.ObserveTurn("brain")
	m.ObserveBrainCall("answer", 120*time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "mcw_copilot_turns_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per source")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.True(t, strings.Contains(string(body), `mcw_copilot_turns_total{source="brain"} 2`))
	assert.True(t, strings.Contains(string(body), `mcw_copilot_brain_calls_total{outcome="answer"} 1`))
}
