package metrics

import "github.com/prometheus/client_golang/prometheus"

// LeadMetrics exposes counters/histograms for the demo request flow.
type LeadMetrics struct {
	submissionsTotal   *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	persistLatency     prometheus.Histogram
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kaptureops",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Total demo request submissions by outcome",
		}, []string{"outcome"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kaptureops",
			Subsystem: "leads",
			Name:      "validation_failures_total",
			Help:      "Total rejected submissions by validation reason",
		}, []string{"reason"}),
		persistLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "kaptureops",
			Subsystem: "leads",
			Name:      "persist_latency_seconds",
			Help:      "Latency of lead persistence",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.validationFailures, m.persistLatency)
	return m
}

// Submission outcome labels.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeDegraded = "degraded"
	OutcomePartial  = "partial"
	OutcomeError    = "error"
)

func (m *LeadMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *LeadMetrics) ObserveValidationFailure(reason string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(reason).Inc()
}

func (m *LeadMetrics) ObservePersistLatency(seconds float64) {
	if m == nil {
		return
	}
	m.persistLatency.Observe(seconds)
}
