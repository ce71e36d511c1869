package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveSubmission(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLeadMetrics(reg)

	m.ObserveSubmission(OutcomeAccepted)
	m.ObserveSubmission(OutcomeAccepted)
	m.ObserveSubmission(OutcomeRejected)

	if got := testutil.ToFloat64(m.submissionsTotal.WithLabelValues(OutcomeAccepted)); got != 2 {
		t.Fatalf("expected 2 accepted submissions, got %v", got)
	}
	if got := testutil.ToFloat64(m.submissionsTotal.WithLabelValues(OutcomeRejected)); got != 1 {
		t.Fatalf("expected 1 rejected submission, got %v", got)
	}
}

func TestObserveValidationFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLeadMetrics(reg)

	m.ObserveValidationFailure("invalid_email")

	if got := testutil.ToFloat64(m.validationFailures.WithLabelValues("invalid_email")); got != 1 {
		t.Fatalf("expected 1 validation failure, got %v", got)
	}
}

func TestNilReceiverSafe(t *testing.T) {
	var m *LeadMetrics
	m.ObserveSubmission(OutcomeAccepted)
	m.ObserveValidationFailure("consent")
	m.ObservePersistLatency(0.1)
}
