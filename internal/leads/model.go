package leads

import "time"

// DemoRequest is the wire payload for POST /api/leads/request-demo. Step2 is
// decoded loosely: its numeric fields arrive as free text from the form and
// its multi-select fields are only kept when the client actually sent an
// array, so the normalizer works on raw values instead of a rigid struct.
type DemoRequest struct {
	Step1       *Step1Payload  `json:"step1"`
	Step2       map[string]any `json:"step2"`
	Attribution *Attribution   `json:"attribution"`
}

// Step1Payload is the required contact section of a demo request.
type Step1Payload struct {
	WorkEmail          string `json:"work_email"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	TitleOrRole        string `json:"title_or_role"`
	CompanyName        string `json:"company_name"`
	CompanyType        string `json:"company_type"`
	EmployeeCountRange string `json:"employee_count_range"`
	Timeline           string `json:"timeline"`
	ConsentAuthorized  bool   `json:"consent_authorized"`
	Honeypot           string `json:"honeypot,omitempty"`
}

// Attribution carries marketing source-tracking metadata captured at
// submission time. Pointers distinguish "absent" from "sent empty".
type Attribution struct {
	UTMSource   *string `json:"utm_source"`
	UTMMedium   *string `json:"utm_medium"`
	UTMCampaign *string `json:"utm_campaign"`
	UTMTerm     *string `json:"utm_term"`
	UTMContent  *string `json:"utm_content"`
	Referrer    *string `json:"referrer"`
	LandingPage *string `json:"landing_page"`
}

// Lead is the persistence-ready record for one demo request.
type Lead struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email"`
	FirstName           *string   `json:"first_name"`
	LastName            *string   `json:"last_name"`
	Role                *string   `json:"role"`
	CompanyName         *string   `json:"company_name"`
	CompanyType         *string   `json:"company_type"`
	EmployeesRange      *string   `json:"employees_range"`
	Timeline            *string   `json:"timeline"`
	UTMSource           *string   `json:"utm_source"`
	UTMMedium           *string   `json:"utm_medium"`
	UTMCampaign         *string   `json:"utm_campaign"`
	UTMTerm             *string   `json:"utm_term"`
	UTMContent          *string   `json:"utm_content"`
	Referrer            *string   `json:"referrer"`
	LandingPage         *string   `json:"landing_page"`
	ConsentAuthorized   bool      `json:"consent_authorized"`
	Status              string    `json:"status"`
	SecurityEnvironment *string   `json:"security_environment"`
	CreatedAt           time.Time `json:"created_at"`
}

// QuestionnaireResponse is the optional operational questionnaire attached
// to a lead. Nil slices and pointers persist as SQL NULL.
type QuestionnaireResponse struct {
	LeadID                   string   `json:"lead_id"`
	OppsReviewedMonth        *int     `json:"opps_reviewed_month"`
	BidsSubmittedMonth       *int     `json:"bids_submitted_month"`
	MaxBidsMonth             *int     `json:"max_bids_month"`
	LaborHoursPerBidRange    *string  `json:"labor_hours_per_bid_range"`
	PeoplePerBidRange        *string  `json:"people_per_bid_range"`
	CycleTimeRange           *string  `json:"cycle_time_range"`
	HoursWeekSearchRange     *string  `json:"hours_week_search_range"`
	ConstraintPrimary        *string  `json:"constraint_primary"`
	ConstraintOther          *string  `json:"constraint_other"`
	SkipOppsFrequency        *string  `json:"skip_opps_frequency"`
	StagesMostLabor          []string `json:"stages_most_labor"`
	LossReasonPrimary        *string  `json:"loss_reason_primary"`
	LossReasonOther          *string  `json:"loss_reason_other"`
	WinRateRange             *string  `json:"win_rate_range"`
	AvgValuePassedRange      *string  `json:"avg_value_passed_range"`
	OppSources               []string `json:"opp_sources"`
	ProposalTools            []string `json:"proposal_tools"`
	CRM                      *string  `json:"crm"`
	FinanceSystem            *string  `json:"finance_system"`
	PastPerformanceLocations []string `json:"past_performance_locations"`
	ResumeManagement         *string  `json:"resume_management"`
	TeamingApproach          *string  `json:"teaming_approach"`
	PortalsUsed              []string `json:"portals_used"`
	CMMCStatus               *string  `json:"cmmc_status"`
	DCAAExposure             *string  `json:"dcaa_exposure"`
	Notes                    *string  `json:"notes"`
}

// StatusNew is the status assigned to every lead at creation. No transition
// path exists in this flow.
const StatusNew = "new"
