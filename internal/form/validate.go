package form

import (
	"regexp"
	"strings"
)

// FieldError is a single validation failure on a named draft field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

var (
	// Word characters, optional .- separated runs, an @, the same for the
	// domain, then one or more dot-prefixed labels of 2-3 letters.
	emailRe = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

	// Optional leading +, first digit 1-9, then up to 15 more digits.
	// A leading zero is rejected.
	phoneRe = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)
)

// Validate checks the draft against the fixed rule set, in order. The first
// failing rule wins: it is returned as a *FieldError and no later rule is
// evaluated. A nil return means the draft may be submitted.
func (c *Controller) Validate() error {
	d := &c.Draft

	type rule struct {
		field   string
		message string
		ok      func() bool
	}
	required := func(v *string) func() bool {
		return func() bool { return strings.TrimSpace(*v) != "" }
	}
	rules := []rule{
		{"firstName", "First name is required", required(&d.FirstName)},
		{"lastName", "Last name is required", required(&d.LastName)},
		{"email", "Email is required", required(&d.Email)},
		{"phone", "Phone is required", required(&d.Phone)},
		{"company", "Company is required", required(&d.Company)},
		{"city", "City is required", required(&d.City)},
		{"state", "State is required", required(&d.State)},
		{"email", "Please enter a valid email address", func() bool { return emailRe.MatchString(d.Email) }},
		{"phone", "Please enter a valid phone number", func() bool { return phoneRe.MatchString(d.Phone) }},
		{"score", "Score must be between 0 and 100", func() bool { return d.Score >= 0 && d.Score <= 100 }},
		{"leadValue", "Lead value cannot be negative", func() bool { return d.LeadValue >= 0 }},
	}

	for _, r := range rules {
		if !r.ok() {
			return &FieldError{Field: r.field, Message: r.message}
		}
	}
	return nil
}
