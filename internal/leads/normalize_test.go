package leads

import (
	"reflect"
	"testing"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Jane@Acme.COM", "jane@acme.com"},
		{"  a@b.com ", "a@b.com"},
		{"a@b.com", "a@b.com"},
		{"plainaddress", ""},
		{"missing@tld", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeEmail(tc.in); got != tc.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeEmailIdempotent(t *testing.T) {
	once := NormalizeEmail("  a@b.com ")
	twice := NormalizeEmail(once)
	if once != twice {
		t.Fatalf("normalization not idempotent: %q vs %q", once, twice)
	}
}

func TestNullableString(t *testing.T) {
	if got := nullableString("  hello "); got == nil || *got != "hello" {
		t.Fatalf("expected trimmed value, got %v", got)
	}
	if got := nullableString("   "); got != nil {
		t.Fatalf("expected nil for blank input, got %q", *got)
	}
	if got := nullableString(""); got != nil {
		t.Fatalf("expected nil for empty input, got %q", *got)
	}
}

func TestRawInt(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want *int
	}{
		{"numeric string", "12", intPtr(12)},
		{"padded string", " 7 ", intPtr(7)},
		{"non-numeric string", "abc", nil},
		{"mixed string", "12abc", nil},
		{"json number", float64(3), intPtr(3)},
		{"absent", nil, nil},
		{"bool", true, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := rawInt(tc.in)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("rawInt(%v) = %v, want %v", tc.in, got, tc.want)
			}
			if got != nil && *got != *tc.want {
				t.Fatalf("rawInt(%v) = %d, want %d", tc.in, *got, *tc.want)
			}
		})
	}
}

func TestRawStringList(t *testing.T) {
	if got := rawStringList([]any{"a", "b"}); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("expected list pass-through, got %v", got)
	}
	if got := rawStringList("not-a-list"); got != nil {
		t.Fatalf("expected nil for non-array input, got %v", got)
	}
	if got := rawStringList(nil); got != nil {
		t.Fatalf("expected nil for absent input, got %v", got)
	}
	// Non-string elements are dropped, order preserved.
	if got := rawStringList([]any{"a", 1, "b"}); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("expected non-strings dropped, got %v", got)
	}
}

func TestBuildLead(t *testing.T) {
	step1 := &Step1Payload{
		WorkEmail:          " Jane@Acme.COM ",
		FirstName:          " Jane ",
		LastName:           "Doe",
		TitleOrRole:        "BD Lead",
		CompanyName:        "Acme",
		CompanyType:        "Prime",
		EmployeeCountRange: "11-50",
		Timeline:           "0-30 days",
		ConsentAuthorized:  true,
	}
	source := "linkedin"
	attr := &Attribution{UTMSource: &source}
	step2 := map[string]any{"security_environment": " AWS GovCloud "}

	lead := BuildLead(step1, step2, attr)

	if lead.Email != "jane@acme.com" {
		t.Errorf("expected normalized email, got %q", lead.Email)
	}
	if lead.FirstName == nil || *lead.FirstName != "Jane" {
		t.Errorf("expected trimmed first name, got %v", lead.FirstName)
	}
	if lead.Status != StatusNew {
		t.Errorf("expected status %q, got %q", StatusNew, lead.Status)
	}
	if !lead.ConsentAuthorized {
		t.Error("expected consent carried through")
	}
	if lead.UTMSource == nil || *lead.UTMSource != "linkedin" {
		t.Errorf("expected utm_source passed through, got %v", lead.UTMSource)
	}
	if lead.UTMMedium != nil {
		t.Errorf("expected absent utm_medium to stay nil, got %q", *lead.UTMMedium)
	}
	if lead.SecurityEnvironment == nil || *lead.SecurityEnvironment != "AWS GovCloud" {
		t.Errorf("expected security environment from step2, got %v", lead.SecurityEnvironment)
	}
}

func TestBuildLeadWithoutAttribution(t *testing.T) {
	lead := BuildLead(&Step1Payload{WorkEmail: "a@b.com"}, nil, nil)
	if lead.UTMSource != nil || lead.Referrer != nil || lead.LandingPage != nil {
		t.Fatal("expected all attribution fields nil when absent")
	}
	if lead.SecurityEnvironment != nil {
		t.Fatal("expected nil security environment without step2")
	}
}

func TestBuildLeadIdempotent(t *testing.T) {
	padded := &Step1Payload{
		WorkEmail: "  a@b.com ", FirstName: " A ", LastName: " B ",
		TitleOrRole: " C ", CompanyName: " D ", CompanyType: " E ",
		EmployeeCountRange: " F ", Timeline: " G ", ConsentAuthorized: true,
	}
	clean := &Step1Payload{
		WorkEmail: "a@b.com", FirstName: "A", LastName: "B",
		TitleOrRole: "C", CompanyName: "D", CompanyType: "E",
		EmployeeCountRange: "F", Timeline: "G", ConsentAuthorized: true,
	}
	if !reflect.DeepEqual(BuildLead(padded, nil, nil), BuildLead(clean, nil, nil)) {
		t.Fatal("normalizing an already-normalized record should be a no-op")
	}
}

func TestBuildQuestionnaire(t *testing.T) {
	step2 := map[string]any{
		"opps_reviewed_month":  "25",
		"bids_submitted_month": "abc",
		"max_bids_month":       float64(4),
		"win_rate_range":       "10-20%",
		"constraint_other":     "   ",
		"stages_most_labor":    []any{"Technical writing", "Review cycles"},
		"portals_used":         "SAM.gov",
		"notes":                " need integration details ",
	}

	q := BuildQuestionnaire("lead-1", step2)

	if q.LeadID != "lead-1" {
		t.Errorf("expected lead id reference, got %q", q.LeadID)
	}
	if q.OppsReviewedMonth == nil || *q.OppsReviewedMonth != 25 {
		t.Errorf("expected parsed opps, got %v", q.OppsReviewedMonth)
	}
	if q.BidsSubmittedMonth != nil {
		t.Errorf("expected non-numeric bids stored as nil, got %v", *q.BidsSubmittedMonth)
	}
	if q.MaxBidsMonth == nil || *q.MaxBidsMonth != 4 {
		t.Errorf("expected numeric max bids, got %v", q.MaxBidsMonth)
	}
	if q.WinRateRange == nil || *q.WinRateRange != "10-20%" {
		t.Errorf("expected win rate kept, got %v", q.WinRateRange)
	}
	if q.ConstraintOther != nil {
		t.Errorf("expected blank string coerced to nil, got %q", *q.ConstraintOther)
	}
	if !reflect.DeepEqual(q.StagesMostLabor, []string{"Technical writing", "Review cycles"}) {
		t.Errorf("expected ordered stage list, got %v", q.StagesMostLabor)
	}
	if q.PortalsUsed != nil {
		t.Errorf("expected non-array portals stored as nil, got %v", q.PortalsUsed)
	}
	if q.Notes == nil || *q.Notes != "need integration details" {
		t.Errorf("expected trimmed notes, got %v", q.Notes)
	}
	if q.CRM != nil {
		t.Errorf("expected absent crm nil, got %v", *q.CRM)
	}
}

func intPtr(i int) *int { return &i }
