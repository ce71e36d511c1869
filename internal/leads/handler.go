package leads

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kaptureops/lead-intake/internal/observability/metrics"
	"github.com/kaptureops/lead-intake/pkg/logging"
)

var leadsTracer = otel.Tracer("kaptureops.internal.leads")

// Handler handles HTTP requests for demo request intake.
type Handler struct {
	repo    Repository // nil means no backing store is configured
	logger  *logging.Logger
	metrics *metrics.LeadMetrics
}

// NewHandler creates a new leads handler. A nil repo enables the degraded
// path: submissions are acknowledged with a generated identifier and never
// persisted.
func NewHandler(repo Repository, logger *logging.Logger, m *metrics.LeadMetrics) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:    repo,
		logger:  logger,
		metrics: m,
	}
}

type successResponse struct {
	Success bool   `json:"success"`
	LeadID  string `json:"lead_id"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// RequestDemo handles POST /api/leads/request-demo.
func (h *Handler) RequestDemo(w http.ResponseWriter, r *http.Request) {
	ctx, span := leadsTracer.Start(r.Context(), "leads.request_demo")
	defer span.End()

	var req DemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode demo request", "error", err)
		h.metrics.ObserveSubmission(metrics.OutcomeError)
		span.RecordError(err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Server error"})
		return
	}

	if err := ValidateDemoRequest(&req); err != nil {
		h.metrics.ObserveSubmission(metrics.OutcomeRejected)
		h.metrics.ObserveValidationFailure(validationReason(err))
		span.RecordError(err)
		span.SetAttributes(attribute.String("kaptureops.lead.rejection_reason", validationReason(err)))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	leadID := uuid.NewString()
	lead := BuildLead(req.Step1, req.Step2, req.Attribution)
	lead.ID = leadID
	span.SetAttributes(attribute.String("kaptureops.lead.id", leadID))

	if h.repo == nil {
		// Soft landing: no store configured. Acknowledge the submission
		// so the form never punishes a visitor for our deployment state.
		h.logger.Warn("no lead store configured, acknowledging without persistence", "lead_id", leadID)
		h.metrics.ObserveSubmission(metrics.OutcomeDegraded)
		span.SetAttributes(attribute.String("kaptureops.lead.outcome", metrics.OutcomeDegraded))
		writeJSON(w, http.StatusOK, successResponse{Success: true, LeadID: leadID, Message: "Demo request received"})
		return
	}

	var q *QuestionnaireResponse
	if req.Step2 != nil {
		q = BuildQuestionnaire(leadID, req.Step2)
	}

	start := time.Now()
	result, err := h.repo.CreateDemoRequest(ctx, lead, q)
	h.metrics.ObservePersistLatency(time.Since(start).Seconds())
	if err != nil {
		h.logger.Error("failed to save lead", "error", err, "email", lead.Email)
		h.metrics.ObserveSubmission(metrics.OutcomeError)
		span.RecordError(err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to save lead"})
		return
	}

	span.SetAttributes(attribute.String("kaptureops.lead.outcome", string(result.Outcome)))
	if result.Outcome == OutcomePartial {
		// Non-fatal: the lead is durable, only the optional questionnaire
		// was lost.
		h.logger.Error("questionnaire insert failed", "lead_id", result.LeadID, "error", result.QuestionnaireErr)
		h.metrics.ObserveSubmission(metrics.OutcomePartial)
		span.RecordError(result.QuestionnaireErr)
	} else {
		h.metrics.ObserveSubmission(metrics.OutcomeAccepted)
	}

	h.logger.Info("lead created", "lead_id", result.LeadID, "outcome", string(result.Outcome))
	writeJSON(w, http.StatusOK, successResponse{Success: true, LeadID: result.LeadID, Message: "Demo request received"})
}

// DemoScheduled handles POST /api/leads/demo-scheduled, the callback a
// scheduling provider hits once a demo is booked. The payload shape depends
// on the provider, so the body is accepted as-is and acknowledged.
//
// TODO: verify the scheduler webhook signature, resolve the lead by email or
// id, and move its status to "scheduled".
func (h *Handler) DemoScheduled(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		payload = nil
	}
	h.logger.Info("demo scheduled webhook received", "fields", len(payload))
	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}

// validationReason maps a validation error to a stable metrics label. The
// honeypot shares ErrInvalidSubmission with generic rejects on the wire, but
// internally both count under the same label anyway.
func validationReason(err error) string {
	var missing *MissingFieldError
	switch {
	case errors.Is(err, ErrMissingStep1):
		return "missing_step1"
	case errors.Is(err, ErrInvalidSubmission):
		return "invalid_submission"
	case errors.Is(err, ErrInvalidEmail):
		return "invalid_email"
	case errors.Is(err, ErrConsentRequired):
		return "consent_required"
	case errors.As(err, &missing):
		return "missing_field"
	default:
		return "other"
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
