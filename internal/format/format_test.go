package format

import (
	"testing"
	"time"
)

func TestFmtDate(t *testing.T) {
	d := time.Date(2026, time.May, 12, 0, 0, 0, 0, time.UTC)
	if got := FmtDate(d, "es"); got != "12/05/2026" {
		t.Fatalf("es date = %q", got)
	}
	if got := FmtDate(d, "en"); got != "May 12, 2026" {
		t.Fatalf("en date = %q", got)
	}
}

func TestFmtPhone(t *testing.T) {
	if got := FmtPhone("4075550134"); got != "(407) 555-0134" {
		t.Fatalf("phone = %q", got)
	}
	// formatting characters in the input are ignored
	if got := FmtPhone("407-555-0134"); got != "(407) 555-0134" {
		t.Fatalf("phone = %q", got)
	}
	// anything that is not ten digits passes through untouched
	if got := FmtPhone("555-0134"); got != "555-0134" {
		t.Fatalf("short input = %q", got)
	}
	if got := FmtPhone("+1 407 555 0134"); got != "+1 407 555 0134" {
		t.Fatalf("eleven digits = %q", got)
	}
}
