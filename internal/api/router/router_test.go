package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kaptureops/lead-intake/internal/leads"
	"github.com/kaptureops/lead-intake/pkg/logging"
	"github.com/stretchr/testify/require"
)

type panickingRepo struct{}

func (panickingRepo) CreateDemoRequest(context.Context, *leads.Lead, *leads.QuestionnaireResponse) (leads.CreateResult, error) {
	panic("storage exploded")
}

func newTestRouter(t *testing.T) (http.Handler, *leads.InMemoryRepository) {
	t.Helper()

	logger := logging.Default()
	repo := leads.NewInMemoryRepository()
	handler := leads.NewHandler(repo, logger, nil)

	cfg := &Config{
		Logger:       logger,
		LeadsHandler: handler,
	}

	return New(cfg), repo
}

func TestRouterHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, "ok", resp["status"])
}

func TestRouterRequestDemoRoute(t *testing.T) {
	router, repo := newTestRouter(t)

	payload := map[string]any{
		"step1": map[string]any{
			"work_email":           "jane@acme.com",
			"first_name":           "Jane",
			"last_name":            "Doe",
			"title_or_role":        "BD Lead",
			"company_name":         "Acme",
			"company_type":         "Prime",
			"employee_count_range": "11-50",
			"timeline":             "0-30 days",
			"consent_authorized":   true,
		},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/leads/request-demo", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 1, repo.Len())
}

func TestRouterDemoScheduledRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/leads/demo-scheduled", bytes.NewReader([]byte(`{"event":"invitee.created"}`)))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]bool
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.True(t, resp["received"])
}

func TestRouterPanicReturnsServerError(t *testing.T) {
	logger := logging.Default()
	cfg := &Config{
		Logger:       logger,
		LeadsHandler: leads.NewHandler(panickingRepo{}, logger, nil),
	}
	router := New(cfg)

	body := []byte(`{"step1":{"work_email":"a@b.co","first_name":"A","last_name":"B","title_or_role":"C","company_name":"D","company_type":"E","employee_count_range":"F","timeline":"G","consent_authorized":true}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/leads/request-demo", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.JSONEq(t, `{"error":"Server error"}`, rr.Body.String())
}

func TestRouterUnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/leads/unknown", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}
