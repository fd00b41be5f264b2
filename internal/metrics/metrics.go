package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CheckoutMetrics holds the prometheus collectors for link construction.
type CheckoutMetrics struct {
	LinksGeneratedTotal *prometheus.CounterVec
	LinkFailuresTotal   *prometheus.CounterVec
	LinkBuildDuration   *prometheus.HistogramVec
	EstimateErrorsTotal prometheus.Counter
}

// NewCheckoutMetrics registers the checkout collectors on the given
// registerer. Pass prometheus.DefaultRegisterer in production and a fresh
// registry in tests.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	factory := promauto.With(reg)
	return &CheckoutMetrics{
		LinksGeneratedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_links_generated_total",
				Help: "Number of checkout deep links generated, by provider target",
			},
			[]string{"provider"},
		),
		LinkFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_link_failures_total",
				Help: "Number of failed link constructions, by provider target and failure reason",
			},
			[]string{"provider", "reason"},
		),
		LinkBuildDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "checkout_link_build_duration_seconds",
				Help:    "Time spent constructing one checkout link",
				Buckets: prometheus.ExponentialBuckets(0.0001, 2, 10),
			},
			[]string{"provider"},
		),
		EstimateErrorsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "checkout_estimate_errors_total",
				Help: "Number of failed upstream exchange rate estimate requests",
			},
		),
	}
}

// RecordLinkGenerated records one successful link construction.
func (m *CheckoutMetrics) RecordLinkGenerated(provider string) {
	m.LinksGeneratedTotal.WithLabelValues(provider).Inc()
}

// RecordLinkFailure records one failed link construction.
func (m *CheckoutMetrics) RecordLinkFailure(provider, reason string) {
	m.LinkFailuresTotal.WithLabelValues(provider, reason).Inc()
}

// RecordBuildDuration records the time one construction took.
func (m *CheckoutMetrics) RecordBuildDuration(provider string, seconds float64) {
	m.LinkBuildDuration.WithLabelValues(provider).Observe(seconds)
}

// RecordEstimateError records one failed estimate lookup.
func (m *CheckoutMetrics) RecordEstimateError() {
	m.EstimateErrorsTotal.Inc()
}
