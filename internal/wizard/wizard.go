// Package wizard implements the two-step demo request form as an explicit
// state machine, decoupled from any rendering layer. A front end drives it
// with Next/Back/Submit and reads State, Err, and LeadID to decide what to
// show.
package wizard

import (
	"context"
	"errors"
	"strings"

	"github.com/kaptureops/lead-intake/internal/leads"
)

// State is the wizard's position. Transitions: Step1 -> Step2 (guarded by
// the required contact fields), Step2 -> Step1 (back navigation), and
// Step2 -> Submitted (guarded only by the network call outcome). Submitted
// is terminal.
type State int

const (
	StateStep1 State = iota
	StateStep2
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateStep1:
		return "step1"
	case StateStep2:
		return "step2"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

var (
	// ErrStep1Incomplete blocks Step1 -> Step2 while required contact
	// fields are still blank.
	ErrStep1Incomplete = errors.New("complete all required fields before continuing")

	// ErrInvalidTransition is returned for moves the state machine does
	// not permit, including any edit after submission.
	ErrInvalidTransition = errors.New("transition not permitted from current state")
)

// Step2Form holds the optional operational questionnaire as the visitor
// types it. Numeric fields stay free text; the server parses them and stores
// unparseable entries as null.
type Step2Form struct {
	OppsReviewedMonth        string   `json:"opps_reviewed_month,omitempty"`
	BidsSubmittedMonth       string   `json:"bids_submitted_month,omitempty"`
	MaxBidsMonth             string   `json:"max_bids_month,omitempty"`
	LaborHoursPerBidRange    string   `json:"labor_hours_per_bid_range,omitempty"`
	PeoplePerBidRange        string   `json:"people_per_bid_range,omitempty"`
	CycleTimeRange           string   `json:"cycle_time_range,omitempty"`
	HoursWeekSearchRange     string   `json:"hours_week_search_range,omitempty"`
	ConstraintPrimary        string   `json:"constraint_primary,omitempty"`
	ConstraintOther          string   `json:"constraint_other,omitempty"`
	SkipOppsFrequency        string   `json:"skip_opps_frequency,omitempty"`
	StagesMostLabor          []string `json:"stages_most_labor,omitempty"`
	LossReasonPrimary        string   `json:"loss_reason_primary,omitempty"`
	LossReasonOther          string   `json:"loss_reason_other,omitempty"`
	WinRateRange             string   `json:"win_rate_range,omitempty"`
	AvgValuePassedRange      string   `json:"avg_value_passed_range,omitempty"`
	OppSources               []string `json:"opp_sources,omitempty"`
	ProposalTools            []string `json:"proposal_tools,omitempty"`
	CRM                      string   `json:"crm,omitempty"`
	FinanceSystem            string   `json:"finance_system,omitempty"`
	PastPerformanceLocations []string `json:"past_performance_locations,omitempty"`
	ResumeManagement         string   `json:"resume_management,omitempty"`
	TeamingApproach          string   `json:"teaming_approach,omitempty"`
	PortalsUsed              []string `json:"portals_used,omitempty"`
	SecurityEnvironment      string   `json:"security_environment,omitempty"`
	CMMCStatus               string   `json:"cmmc_status,omitempty"`
	DCAAExposure             string   `json:"dcaa_exposure,omitempty"`
	Notes                    string   `json:"notes,omitempty"`
}

// hasData reports whether the visitor answered anything in step 2. An
// untouched questionnaire is omitted from the submission entirely so the
// server never creates an all-null response row.
func (f *Step2Form) hasData() bool {
	for _, s := range []string{
		f.OppsReviewedMonth, f.BidsSubmittedMonth, f.MaxBidsMonth,
		f.LaborHoursPerBidRange, f.PeoplePerBidRange, f.CycleTimeRange,
		f.HoursWeekSearchRange, f.ConstraintPrimary, f.ConstraintOther,
		f.SkipOppsFrequency, f.LossReasonPrimary, f.LossReasonOther,
		f.WinRateRange, f.AvgValuePassedRange, f.CRM, f.FinanceSystem,
		f.ResumeManagement, f.TeamingApproach, f.SecurityEnvironment,
		f.CMMCStatus, f.DCAAExposure, f.Notes,
	} {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return len(f.StagesMostLabor) > 0 || len(f.OppSources) > 0 ||
		len(f.ProposalTools) > 0 || len(f.PastPerformanceLocations) > 0 ||
		len(f.PortalsUsed) > 0
}

// Form carries entered data through the wizard. Field values survive failed
// submissions so the visitor can correct and resubmit without re-entry.
type Form struct {
	state State

	Step1       leads.Step1Payload
	Step2       Step2Form
	Attribution leads.Attribution

	// Err is the last submission or validation failure, as display text.
	// Cleared on the next successful transition.
	Err string

	// LeadID is set once the server acknowledges the submission.
	LeadID string

	submitter Submitter
}

// Submitter posts a completed form. *Client is the HTTP implementation.
type Submitter interface {
	SubmitDemoRequest(ctx context.Context, payload *Payload) (string, error)
}

// New creates a form at step 1.
func New(submitter Submitter) *Form {
	return &Form{state: StateStep1, submitter: submitter}
}

// State returns the wizard's current position.
func (f *Form) State() State {
	return f.state
}

// step1Complete mirrors the server's required-field list: every contact
// field non-empty plus consent. The server remains the authority; this gate
// only keeps incomplete submissions off the wire.
func (f *Form) step1Complete() bool {
	for _, s := range []string{
		f.Step1.WorkEmail, f.Step1.FirstName, f.Step1.LastName,
		f.Step1.TitleOrRole, f.Step1.CompanyName, f.Step1.CompanyType,
		f.Step1.EmployeeCountRange, f.Step1.Timeline,
	} {
		if strings.TrimSpace(s) == "" {
			return false
		}
	}
	return f.Step1.ConsentAuthorized
}

// Next advances Step1 -> Step2 when the required contact fields are filled.
func (f *Form) Next() error {
	if f.state != StateStep1 {
		return ErrInvalidTransition
	}
	if !f.step1Complete() {
		f.Err = ErrStep1Incomplete.Error()
		return ErrStep1Incomplete
	}
	f.state = StateStep2
	f.Err = ""
	return nil
}

// Back returns Step2 -> Step1, preserving everything entered.
func (f *Form) Back() error {
	if f.state != StateStep2 {
		return ErrInvalidTransition
	}
	f.state = StateStep1
	f.Err = ""
	return nil
}

// Submit bundles both steps with attribution into one request and posts it.
// On success the wizard reaches its terminal state; on failure the server's
// error text is retained on the form and all entered data survives for a
// retry.
func (f *Form) Submit(ctx context.Context) error {
	if f.state != StateStep2 {
		return ErrInvalidTransition
	}

	payload := &Payload{
		Step1:       &f.Step1,
		Attribution: &f.Attribution,
	}
	if f.Step2.hasData() {
		step2 := f.Step2
		payload.Step2 = &step2
	}

	leadID, err := f.submitter.SubmitDemoRequest(ctx, payload)
	if err != nil {
		f.Err = err.Error()
		return err
	}

	f.state = StateSubmitted
	f.LeadID = leadID
	f.Err = ""
	return nil
}
