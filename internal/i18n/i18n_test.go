package i18n

import (
	"strings"
	"testing"
)

func load(t *testing.T) *Bundle {
	t.Helper()
	b, err := Load("../../locales", "es", []string{"es", "en"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return b
}

func TestMissingKeyFallsBackToKey(t *testing.T) {
	b := load(t)
	if got := b.T("en", "no.such.key"); got != "no.such.key" {
		t.Fatalf("expected key echo, got %q", got)
	}
	if got := b.TStrings("en", "no.such.key"); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
	if got := b.Services("en", "no.such.key"); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestNonStringValueDegradesToKey(t *testing.T) {
	b := load(t)
	// services.list holds records, not a string
	if got := b.T("en", "services.list"); got != "services.list" {
		t.Fatalf("expected key echo for array-typed value, got %q", got)
	}
}

func TestLookupPerLanguage(t *testing.T) {
	b := load(t)
	if got := b.T("en", "nav.contact"); got != "Contact" {
		t.Fatalf("expected English label, got %q", got)
	}
	if got := b.T("es", "nav.contact"); got != "Contacto" {
		t.Fatalf("expected Spanish label, got %q", got)
	}
}

func TestUnknownLangFallsBackToDefault(t *testing.T) {
	b := load(t)
	if got := b.T("fr", "nav.contact"); got != "Contacto" {
		t.Fatalf("expected fallback (es) label, got %q", got)
	}
}

func TestTFormatInterpolates(t *testing.T) {
	b := load(t)
	got := b.TFormat("en", "contact.success.body", map[string]any{"name": "Jane Doe"})
	want := "Thank you, Jane Doe. Our team will call you within one business day to confirm your appointment."
	if got != want {
		t.Fatalf("got %q", got)
	}
}

func TestTFormatLeavesUnknownPlaceholders(t *testing.T) {
	b := load(t)
	got := b.TFormat("en", "contact.success.body", map[string]any{"other": "x"})
	if !strings.HasPrefix(got, "Thank you,") {
		t.Fatalf("unexpected template: %q", got)
	}
	if !strings.Contains(got, "{name}") {
		t.Fatalf("expected unresolved placeholder kept verbatim, got %q", got)
	}
}

func TestServicesEntries(t *testing.T) {
	b := load(t)
	svcs := b.Services("en", "services.list")
	if len(svcs) != 5 {
		t.Fatalf("expected 5 services, got %d", len(svcs))
	}
	if svcs[0].Key != "well-visits" || svcs[0].Title == "" {
		t.Fatalf("unexpected first entry: %+v", svcs[0])
	}
	es := b.Services("es", "services.list")
	if len(es) != len(svcs) {
		t.Fatalf("locales out of sync: en=%d es=%d", len(svcs), len(es))
	}
	for i := range svcs {
		if svcs[i].Key != es[i].Key {
			t.Fatalf("service key mismatch at %d: %q vs %q", i, svcs[i].Key, es[i].Key)
		}
	}
}

func TestStringArrays(t *testing.T) {
	b := load(t)
	hours := b.TStrings("en", "footer.hours")
	if len(hours) != 3 {
		t.Fatalf("expected 3 entries, got %v", hours)
	}
}

func TestResolveAcceptLanguage(t *testing.T) {
	b := load(t)
	if got := b.Resolve("en-US,en;q=0.9"); got != "en" {
		t.Fatalf("expected en, got %s", got)
	}
	if got := b.Resolve("es-MX"); got != "es" {
		t.Fatalf("expected es, got %s", got)
	}
	if got := b.Resolve("fr-FR"); got != "es" {
		t.Fatalf("expected fallback es, got %s", got)
	}
	if got := b.Resolve(""); got != "es" {
		t.Fatalf("expected fallback for empty header, got %s", got)
	}
}
