package leads

import "strings"

// requiredStep1Fields is the ordered list of mandatory contact fields. The
// first blank one is reported by name, so order is part of the contract.
var requiredStep1Fields = []struct {
	name  string
	value func(*Step1Payload) string
}{
	{"first_name", func(s *Step1Payload) string { return s.FirstName }},
	{"last_name", func(s *Step1Payload) string { return s.LastName }},
	{"title_or_role", func(s *Step1Payload) string { return s.TitleOrRole }},
	{"company_name", func(s *Step1Payload) string { return s.CompanyName }},
	{"company_type", func(s *Step1Payload) string { return s.CompanyType }},
	{"employee_count_range", func(s *Step1Payload) string { return s.EmployeeCountRange }},
	{"timeline", func(s *Step1Payload) string { return s.Timeline }},
}

// ValidateDemoRequest checks a raw submission, short-circuiting on the first
// failure. Checks run in contract order: contact section present, honeypot
// blank, email well-formed, required fields non-blank, consent affirmed.
// Pure; no side effects.
func ValidateDemoRequest(req *DemoRequest) error {
	if req == nil || req.Step1 == nil {
		return ErrMissingStep1
	}

	// Honeypot: a hidden field real visitors never fill.
	if strings.TrimSpace(req.Step1.Honeypot) != "" {
		return ErrInvalidSubmission
	}

	if NormalizeEmail(req.Step1.WorkEmail) == "" {
		return ErrInvalidEmail
	}

	for _, f := range requiredStep1Fields {
		if strings.TrimSpace(f.value(req.Step1)) == "" {
			return &MissingFieldError{Field: f.name}
		}
	}

	if !req.Step1.ConsentAuthorized {
		return ErrConsentRequired
	}

	return nil
}
