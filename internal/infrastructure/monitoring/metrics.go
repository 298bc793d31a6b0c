// Package monitoring exposes request mediation counters to Prometheus.
package monitoring

import (
	"net/http"
	"strconv"

	"github.com/bnema/netguard/internal/application/port"
	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "netguard"

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Decisions counts request verdicts by session kind and pipeline stage.
	Decisions *prometheus.CounterVec
	// Prompts counts answered permission prompts.
	Prompts *prometheus.CounterVec
	// SecurityEvents counts published notifications by kind.
	SecurityEvents *prometheus.CounterVec
	// Sessions tracks configured sessions by kind.
	Sessions *prometheus.GaugeVec
	// PendingPrompts is the prompt queue length.
	PendingPrompts prometheus.Gauge

	gatherer prometheus.Gatherer
}

var _ port.InterceptMetrics = (*Metrics)(nil)

// NewMetrics registers the collectors on reg. Pass prometheus.NewRegistry()
// in tests to avoid clashing with the default registry.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Decisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "request_decisions_total",
				Help:      "Total number of request verdicts by session kind and stage",
			},
			[]string{"session_kind", "stage"},
		),
		Prompts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "permission_prompts_total",
				Help:      "Total number of permission prompts by kind and answer",
			},
			[]string{"permission", "allowed"},
		),
		SecurityEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "security_events_total",
				Help:      "Total number of security events by kind",
			},
			[]string{"kind"},
		),
		Sessions: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sessions",
				Help:      "Number of configured sessions by kind",
			},
			[]string{"session_kind"},
		),
		PendingPrompts: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "permission_prompts_pending",
				Help:      "Number of permission prompts waiting to be shown",
			},
		),
		gatherer: reg,
	}
}

// ObserveDecision implements port.InterceptMetrics.
func (m *Metrics) ObserveDecision(kind entity.SessionKind, stage entity.Stage) {
	m.Decisions.WithLabelValues(string(kind), string(stage)).Inc()
}

// ObservePrompt implements port.InterceptMetrics.
func (m *Metrics) ObservePrompt(kind entity.PermissionKind, allowed bool) {
	m.Prompts.WithLabelValues(string(kind), strconv.FormatBool(allowed)).Inc()
}

// ObserveSecurityEvent implements port.InterceptMetrics.
func (m *Metrics) ObserveSecurityEvent(kind entity.SecurityEventKind) {
	m.SecurityEvents.WithLabelValues(string(kind)).Inc()
}

// SetSessions records the number of live sessions of one kind.
func (m *Metrics) SetSessions(kind entity.SessionKind, n int) {
	m.Sessions.WithLabelValues(string(kind)).Set(float64(n))
}

// SetPendingPrompts records the prompt queue length.
func (m *Metrics) SetPendingPrompts(n int) {
	m.PendingPrompts.Set(float64(n))
}

// Handler serves the registry in the Prometheus text format. refresh, when
// non-nil, runs before every scrape to update the gauges.
func (m *Metrics) Handler(refresh func(*Metrics)) http.Handler {
	h := promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if refresh != nil {
			refresh(m)
		}
		h.ServeHTTP(w, r)
	})
}
