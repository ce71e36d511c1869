package leads

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Outcome identifies how far a demo request made it into storage.
type Outcome string

const (
	// OutcomeStored means the lead, and the questionnaire when one was
	// supplied, were both written.
	OutcomeStored Outcome = "stored"

	// OutcomePartial means the lead was written but the questionnaire
	// insert failed. The request still succeeds; the failure is surfaced
	// in CreateResult rather than swallowed in a log line.
	OutcomePartial Outcome = "partial"
)

// CreateResult reports the outcome of persisting one demo request.
type CreateResult struct {
	LeadID  string
	Outcome Outcome

	// QuestionnaireErr holds the non-fatal questionnaire failure when
	// Outcome is OutcomePartial.
	QuestionnaireErr error
}

// Repository defines the interface for demo request storage. The two writes
// are sequential, not transactional: a questionnaire failure never rolls
// back the lead.
type Repository interface {
	CreateDemoRequest(ctx context.Context, lead *Lead, q *QuestionnaireResponse) (CreateResult, error)
}

// InMemoryRepository is a Repository backed by process memory, used in tests
// and local development.
type InMemoryRepository struct {
	mu             sync.RWMutex
	leads          map[string]*Lead
	questionnaires map[string]*QuestionnaireResponse
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		leads:          make(map[string]*Lead),
		questionnaires: make(map[string]*QuestionnaireResponse),
	}
}

// CreateDemoRequest stores the lead and optional questionnaire in memory.
func (r *InMemoryRepository) CreateDemoRequest(ctx context.Context, lead *Lead, q *QuestionnaireResponse) (CreateResult, error) {
	stored := *lead
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	stored.CreatedAt = time.Now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads[stored.ID] = &stored
	if q != nil {
		qCopy := *q
		qCopy.LeadID = stored.ID
		r.questionnaires[stored.ID] = &qCopy
	}
	return CreateResult{LeadID: stored.ID, Outcome: OutcomeStored}, nil
}

// GetLead retrieves a stored lead by ID, or nil when absent.
func (r *InMemoryRepository) GetLead(id string) *Lead {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.leads[id]
}

// GetQuestionnaire retrieves the questionnaire stored for a lead, or nil.
func (r *InMemoryRepository) GetQuestionnaire(leadID string) *QuestionnaireResponse {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.questionnaires[leadID]
}

// Len reports how many leads are stored.
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.leads)
}
