// Package metrics defines the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lexiblog"

// Recorder holds the collectors. A nil *Recorder records nothing, so callers
// never need to check whether metrics are enabled.
type Recorder struct {
	requests   *prometheus.CounterVec
	modelCalls *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generation_requests_total",
				Help:      "Total number of generation requests by action and outcome",
			},
			[]string{"action", "outcome"},
		),
		modelCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "model_calls_total",
				Help:      "Total number of outbound language model calls by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generation_duration_seconds",
				Help:      "Duration of dispatched generation requests in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 80},
			},
			[]string{"action"},
		),
	}
}

// ObserveRequest records one finished request.
func (r *Recorder) ObserveRequest(action, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(action, outcome).Inc()
	r.duration.WithLabelValues(action).Observe(elapsed.Seconds())
}

// ObserveModelCall records one outbound model call.
func (r *Recorder) ObserveModelCall(provider, outcome string) {
	if r == nil {
		return
	}
	r.modelCalls.WithLabelValues(provider, outcome).Inc()
}

// Handler exposes the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
