package contact

import "testing"

func valid() Submission {
	return Submission{
		PatientName:     "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "(407) 555-1234",
		Reason:          ReasonWell,
		AppointmentType: TypeNew,
	}
}

func TestValidSubmissionPasses(t *testing.T) {
	s := valid()
	if err := s.Validate(); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
}

func TestValidationOrder(t *testing.T) {
	// everything invalid: the name rule must win
	s := Submission{Honeypot: "spam"}
	if err := s.Validate(); err == nil || err.MessageKey != "contact.error.name" {
		t.Fatalf("expected name error first, got %v", err)
	}
}

func TestOnlyPhoneInvalidSurfacesPhoneError(t *testing.T) {
	s := valid()
	s.Phone = "123"
	err := s.Validate()
	if err == nil || err.MessageKey != "contact.error.phone" {
		t.Fatalf("expected phone error, got %v", err)
	}
}

func TestEmailShape(t *testing.T) {
	for _, bad := range []string{"", "jane", "jane@", "jane@example", "jane @example.com", "@example.com"} {
		s := valid()
		s.Email = bad
		if err := s.Validate(); err == nil || err.MessageKey != "contact.error.email" {
			t.Fatalf("email %q: expected email error, got %v", bad, err)
		}
	}
	s := valid()
	s.Email = "jane.doe+appt@clinic.example.org"
	if err := s.Validate(); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
}

func TestPhoneCountsDigitsOnly(t *testing.T) {
	s := valid()
	s.Phone = "407-555-123" // 9 digits
	if err := s.Validate(); err == nil || err.MessageKey != "contact.error.phone" {
		t.Fatalf("expected phone error, got %v", err)
	}
	s.Phone = "+1 (407) 555-1234"
	if err := s.Validate(); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
}

func TestMissingReason(t *testing.T) {
	s := valid()
	s.Reason = ""
	if err := s.Validate(); err == nil || err.MessageKey != "contact.error.reason" {
		t.Fatalf("expected reason error, got %v", err)
	}
}

func TestHoneypotBlocksAsGenericError(t *testing.T) {
	s := valid()
	s.Honeypot = "i am a bot"
	err := s.Validate()
	if err == nil || err.MessageKey != "contact.error.generic" {
		t.Fatalf("expected generic error for honeypot, got %v", err)
	}
}

func TestParseReason(t *testing.T) {
	if got := ParseReason("well-visit"); got != ReasonWell {
		t.Fatalf("got %q", got)
	}
	if got := ParseReason("nonsense"); got != "" {
		t.Fatalf("expected empty reason, got %q", got)
	}
}

func TestParseAppointmentType(t *testing.T) {
	if got := ParseAppointmentType("follow-up"); got != TypeFollowUp {
		t.Fatalf("got %q", got)
	}
	if got := ParseAppointmentType(""); got != TypeNew {
		t.Fatalf("expected default new, got %q", got)
	}
}
