package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	CollectionsGenerated *prometheus.CounterVec
	TicketsCreated       prometheus.Counter
	PasswordResets       prometheus.Counter
	RequestDuration      *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on reg. Passing a fresh
// registry keeps test suites from tripping duplicate-registration panics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CollectionsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jsonsvc_collections_generated_total",
			Help: "Total number of mock collections generated on first access",
		}, []string{"domain"}),
		TicketsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "jsonsvc_support_tickets_created_total",
			Help: "Total number of support tickets created",
		}),
		PasswordResets: factory.NewCounter(prometheus.CounterOpts{
			Name: "jsonsvc_password_resets_requested_total",
			Help: "Total number of password reset requests recorded",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "jsonsvc_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// IncrementCollectionsGenerated records a first-access generation for domain.
func (m *Metrics) IncrementCollectionsGenerated(domain string) {
	if m != nil {
		m.CollectionsGenerated.WithLabelValues(domain).Inc()
	}
}

// IncrementTicketsCreated increments the support ticket counter by 1.
func (m *Metrics) IncrementTicketsCreated() {
	if m != nil {
		m.TicketsCreated.Inc()
	}
}

// IncrementPasswordResets increments the password reset counter by 1.
func (m *Metrics) IncrementPasswordResets() {
	if m != nil {
		m.PasswordResets.Inc()
	}
}

// ObserveRequest records one request's latency.
func (m *Metrics) ObserveRequest(method, route string, seconds float64) {
	if m != nil {
		m.RequestDuration.WithLabelValues(method, route).Observe(seconds)
	}
}
