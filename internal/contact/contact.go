// Package contact models the appointment-request form: the transient
// submission record, its enumerations, and the ordered client-side
// validation rules. Submissions are created per request, validated, relayed
// once, and discarded; nothing is persisted.
package contact

import (
	"regexp"
	"strings"
)

// Reason is the visit-reason selection.
type Reason string

const (
	ReasonWell    Reason = "well-visit"
	ReasonSick    Reason = "sick-visit"
	ReasonVaccine Reason = "vaccine"
	ReasonOther   Reason = "other"
)

// ParseReason maps a form value to a Reason; unknown values come back empty.
func ParseReason(v string) Reason {
	switch Reason(strings.TrimSpace(v)) {
	case ReasonWell, ReasonSick, ReasonVaccine, ReasonOther:
		return Reason(strings.TrimSpace(v))
	}
	return ""
}

// AppointmentType distinguishes new patients from follow-ups.
type AppointmentType string

const (
	TypeNew      AppointmentType = "new"
	TypeFollowUp AppointmentType = "follow-up"
)

// ParseAppointmentType maps a form value; unknown values default to new.
func ParseAppointmentType(v string) AppointmentType {
	if AppointmentType(strings.TrimSpace(v)) == TypeFollowUp {
		return TypeFollowUp
	}
	return TypeNew
}

// Submission is one appointment request as entered by the visitor.
type Submission struct {
	PatientName     string
	Email           string
	Phone           string
	Reason          Reason
	AppointmentType AppointmentType
	PreferredDoctor string
	Message         string
	// Honeypot must stay empty; bots that fill it are rejected without a
	// network call, indistinguishably from a validation failure.
	Honeypot string
}

// FieldError identifies the first failing validation rule. MessageKey is an
// i18n key so the handler can surface a localized message.
type FieldError struct {
	Field      string
	MessageKey string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.MessageKey }

// basic local@domain.tld shape; anything stricter belongs to the mail server
var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPhoneDigits = 10

// Validate applies the rules in order and returns the first failure:
// name, email shape, phone digit count, reason selected, honeypot empty.
func (s *Submission) Validate() *FieldError {
	if strings.TrimSpace(s.PatientName) == "" {
		return &FieldError{Field: "patient_name", MessageKey: "contact.error.name"}
	}
	if !emailShape.MatchString(strings.TrimSpace(s.Email)) {
		return &FieldError{Field: "email", MessageKey: "contact.error.email"}
	}
	if countDigits(s.Phone) < minPhoneDigits {
		return &FieldError{Field: "phone", MessageKey: "contact.error.phone"}
	}
	if s.Reason == "" {
		return &FieldError{Field: "reason", MessageKey: "contact.error.reason"}
	}
	if strings.TrimSpace(s.Honeypot) != "" {
		return &FieldError{Field: "botcheck", MessageKey: "contact.error.generic"}
	}
	return nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
