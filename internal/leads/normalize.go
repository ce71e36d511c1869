package leads

import (
	"regexp"
	"strconv"
	"strings"
)

// emailPattern is deliberately minimal: non-whitespace local part, "@",
// non-whitespace domain, ".", non-whitespace TLD. Deliverability is the
// sales team's problem, not the form's.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims and lowercases an email address. It returns "" when
// the result does not match the minimal local@domain.tld shape. Idempotent:
// normalizing an already-normalized address is a no-op.
func NormalizeEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if !emailPattern.MatchString(email) {
		return ""
	}
	return email
}

// Sanitize truth table, applied uniformly across both records:
//
//	string  trim; empty after trim        -> nil
//	number  base-10 integer parse failure -> nil (never a rejection)
//	array   input was not a JSON array    -> nil
//
// Attribution pointers pass through untouched: absent stays nil, never "".

// nullableString trims s and returns nil for an empty result.
func nullableString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// rawString trims the text form of a loosely decoded JSON value, returning
// nil for anything absent, non-string, or blank.
func rawString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return nullableString(s)
}

// rawInt parses a loosely decoded JSON value as a base-10 integer. Text
// input that does not parse cleanly becomes nil rather than an error; a
// malformed optional numeric never fails the request.
func rawInt(v any) *int {
	switch n := v.(type) {
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return nil
		}
		return &i
	case float64:
		i := int(n)
		return &i
	default:
		return nil
	}
}

// rawStringList keeps a value only when the client actually sent an array;
// element order is preserved and non-string elements are dropped.
func rawStringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// BuildLead maps a validated submission into a persistence-ready Lead.
// Pure: the caller assigns the identifier. The security environment note
// lives on the lead row even though it is collected in step 2.
func BuildLead(step1 *Step1Payload, step2 map[string]any, attr *Attribution) *Lead {
	lead := &Lead{
		Email:             NormalizeEmail(step1.WorkEmail),
		FirstName:         nullableString(step1.FirstName),
		LastName:          nullableString(step1.LastName),
		Role:              nullableString(step1.TitleOrRole),
		CompanyName:       nullableString(step1.CompanyName),
		CompanyType:       nullableString(step1.CompanyType),
		EmployeesRange:    nullableString(step1.EmployeeCountRange),
		Timeline:          nullableString(step1.Timeline),
		ConsentAuthorized: step1.ConsentAuthorized,
		Status:            StatusNew,
	}
	if attr != nil {
		lead.UTMSource = attr.UTMSource
		lead.UTMMedium = attr.UTMMedium
		lead.UTMCampaign = attr.UTMCampaign
		lead.UTMTerm = attr.UTMTerm
		lead.UTMContent = attr.UTMContent
		lead.Referrer = attr.Referrer
		lead.LandingPage = attr.LandingPage
	}
	if step2 != nil {
		lead.SecurityEnvironment = rawString(step2["security_environment"])
	}
	return lead
}

// BuildQuestionnaire maps the optional step-2 section into a
// QuestionnaireResponse referencing leadID.
func BuildQuestionnaire(leadID string, step2 map[string]any) *QuestionnaireResponse {
	return &QuestionnaireResponse{
		LeadID:                   leadID,
		OppsReviewedMonth:        rawInt(step2["opps_reviewed_month"]),
		BidsSubmittedMonth:       rawInt(step2["bids_submitted_month"]),
		MaxBidsMonth:             rawInt(step2["max_bids_month"]),
		LaborHoursPerBidRange:    rawString(step2["labor_hours_per_bid_range"]),
		PeoplePerBidRange:        rawString(step2["people_per_bid_range"]),
		CycleTimeRange:           rawString(step2["cycle_time_range"]),
		HoursWeekSearchRange:     rawString(step2["hours_week_search_range"]),
		ConstraintPrimary:        rawString(step2["constraint_primary"]),
		ConstraintOther:          rawString(step2["constraint_other"]),
		SkipOppsFrequency:        rawString(step2["skip_opps_frequency"]),
		StagesMostLabor:          rawStringList(step2["stages_most_labor"]),
		LossReasonPrimary:        rawString(step2["loss_reason_primary"]),
		LossReasonOther:          rawString(step2["loss_reason_other"]),
		WinRateRange:             rawString(step2["win_rate_range"]),
		AvgValuePassedRange:      rawString(step2["avg_value_passed_range"]),
		OppSources:               rawStringList(step2["opp_sources"]),
		ProposalTools:            rawStringList(step2["proposal_tools"]),
		CRM:                      rawString(step2["crm"]),
		FinanceSystem:            rawString(step2["finance_system"]),
		PastPerformanceLocations: rawStringList(step2["past_performance_locations"]),
		ResumeManagement:         rawString(step2["resume_management"]),
		TeamingApproach:          rawString(step2["teaming_approach"]),
		PortalsUsed:              rawStringList(step2["portals_used"]),
		CMMCStatus:               rawString(step2["cmmc_status"]),
		DCAAExposure:             rawString(step2["dcaa_exposure"]),
		Notes:                    rawString(step2["notes"]),
	}
}
