package leads

import (
	"errors"
	"fmt"
)

// Validation sentinels. The message text is the wire contract: it is written
// verbatim into the error body of the HTTP response.
var (
	// ErrMissingStep1 is returned when the contact section is absent entirely.
	ErrMissingStep1 = errors.New("Missing step1 data")

	// ErrInvalidSubmission is the uniform rejection for spam. A tripped
	// honeypot reports the same shape as a generic bad submission so bots
	// get no distinct signal.
	ErrInvalidSubmission = errors.New("Invalid submission")

	// ErrInvalidEmail is returned when the work email fails the minimal
	// local@domain.tld shape after trimming and lowercasing.
	ErrInvalidEmail = errors.New("Invalid work email")

	// ErrConsentRequired is returned when consent is absent or false.
	ErrConsentRequired = errors.New("Consent required")
)

// MissingFieldError names the first required step-1 field that was absent or
// blank after trimming.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing required field: %s", e.Field)
}
