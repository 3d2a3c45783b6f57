package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mcw_copilot"

// Recorder receives per-turn observations from the relay.
type Recorder interface {
	ObserveTurn(source string)
	ObserveBrainCall(outcome string, elapsed time.Duration)
}

// Prometheus is a Recorder backed by Prometheus collectors.
type Prometheus struct {
	turns        *prometheus.CounterVec
	brainCalls   *prometheus.CounterVec
	brainLatency *prometheus.HistogramVec
	gatherer     prometheus.Gatherer
}

// New registers the relay collectors on reg.
func New(reg *prometheus.Registry) *Prometheus {
	p := &Prometheus{
		turns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "turns_total",
				Help:      "Chat turns answered, by reply source (intent, brain, fallback).",
			},
			[]string{"source"},
		),
		brainCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "brain_calls_total",
				Help:      "Answering service calls, by outcome.",
			},
			[]string{"outcome"},
		),
		brainLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "brain_call_duration_seconds",
				Help:      "Duration of answering service calls.",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15, 30},
			},
			[]string{"outcome"},
		),
		gatherer: reg,
	}
	reg.MustRegister(p.turns, p.brainCalls, p.brainLatency)
	return p
}

func (p *Prometheus) ObserveTurn(source string) {
	p.turns.WithLabelValues(source).Inc()
}

func (p *Prometheus) ObserveBrainCall(outcome string, elapsed time.Duration) {
	p.brainCalls.WithLabelValues(outcome).Inc()
	p.brainLatency.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.gatherer, promhttp.HandlerOpts{})
}

// Nop discards observations.
type Nop struct{}

func (Nop) ObserveTurn(string)                     {}
func (Nop) ObserveBrainCall(string, time.Duration) {}
