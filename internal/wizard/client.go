package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kaptureops/lead-intake/internal/leads"
)

// Payload is the single JSON request posted on submission: both step
// sections plus attribution metadata.
type Payload struct {
	Step1       *leads.Step1Payload `json:"step1"`
	Step2       *Step2Form          `json:"step2,omitempty"`
	Attribution *leads.Attribution  `json:"attribution,omitempty"`
}

// Client posts demo requests to the intake API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client against baseURL. A nil httpClient gets a
// sensible default timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

type submitResponse struct {
	Success bool   `json:"success"`
	LeadID  string `json:"lead_id"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// SubmitDemoRequest posts the payload and returns the generated lead
// identifier. A non-2xx response surfaces the server's error text so the
// form can display it verbatim.
func (c *Client) SubmitDemoRequest(ctx context.Context, payload *Payload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("wizard: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/leads/request-demo", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("wizard: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("wizard: submit: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var parsed submitResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&parsed); decodeErr != nil && resp.StatusCode == http.StatusOK {
		return "", fmt.Errorf("wizard: decode response: %w", decodeErr)
	}

	if resp.StatusCode != http.StatusOK || !parsed.Success {
		if parsed.Error != "" {
			return "", errors.New(parsed.Error)
		}
		return "", fmt.Errorf("submission failed with status %d", resp.StatusCode)
	}

	return parsed.LeadID, nil
}
