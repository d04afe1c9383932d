package content

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func store(t *testing.T) *Store {
	t.Helper()
	s := NewStore("../../content")
	s.SetCacheTTL(100 * time.Millisecond)
	return s
}

func TestGetLocalizedPage(t *testing.T) {
	s := store(t)
	en, err := s.Get("pages", "about", "en")
	if err != nil {
		t.Fatalf("get en: %v", err)
	}
	if en.Title != "About our clinic" {
		t.Fatalf("title = %q", en.Title)
	}
	es, err := s.Get("pages", "about", "es")
	if err != nil {
		t.Fatalf("get es: %v", err)
	}
	if es.Title != "Sobre nuestra clínica" {
		t.Fatalf("title = %q", es.Title)
	}
	if es.UpdatedAt.IsZero() {
		t.Fatal("expected updated_at from front matter")
	}
}

func TestGetFallsBackAcrossLanguages(t *testing.T) {
	s := store(t)
	// historia only exists in Spanish
	page, err := s.Get("pages", "historia", "en")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if page.Lang != "es" {
		t.Fatalf("expected es fallback, got %q", page.Lang)
	}
}

func TestGetUnknownPage(t *testing.T) {
	s := store(t)
	_, err := s.Get("pages", "no-such-page", "en")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetRejectsTraversal(t *testing.T) {
	s := store(t)
	if _, err := s.Get("pages", "../../go", "en"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProviderFrontMatter(t *testing.T) {
	s := store(t)
	page, err := s.Get("providers", "jaime-acosta", "en")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if page.Specialty != "Family Medicine" {
		t.Fatalf("specialty = %q", page.Specialty)
	}
	if page.Photo == "" {
		t.Fatal("expected photo path")
	}
}

func TestRenderProducesTOC(t *testing.T) {
	r := Render("## First Section\n\ntext\n\n## Segunda Sección\n\nmás texto\n")
	if len(r.TOC) != 2 {
		t.Fatalf("toc = %+v", r.TOC)
	}
	if r.TOC[0].ID != "first-section" {
		t.Fatalf("id = %q", r.TOC[0].ID)
	}
	if !strings.Contains(string(r.HTML), `id="first-section"`) {
		t.Fatalf("heading id missing from html: %s", r.HTML)
	}
}

func TestRenderSanitizesMarkup(t *testing.T) {
	r := Render("hello <script>alert(1)</script> world")
	if strings.Contains(string(r.HTML), "<script") {
		t.Fatalf("script survived sanitization: %s", r.HTML)
	}
}
