package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"clinicaacosta.org/clinic-web/internal/content"
	mw "clinicaacosta.org/clinic-web/internal/middleware"
	"clinicaacosta.org/clinic-web/internal/seo"
)

// ProviderHandler renders one provider bio from the markdown store.
func ProviderHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	slug := chi.URLParam(r, "slug")

	page, err := pages.Get("providers", slug, lang)
	if errors.Is(err, content.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "content unavailable", http.StatusInternalServerError)
		return
	}

	view := map[string]any{
		"Page":     page,
		"Rendered": content.Render(page.Body),
		"Eyebrow":  bundle.T(lang, "provider.title"),
		"Attrs":    sectionAttrs(r),
	}

	vm := newPageData(r, page.Title)
	vm.Provider = view
	desc := page.SEO.Description
	if desc == "" {
		desc = page.Summary
	}
	setSEO(&vm, r, desc)
	vm.SEO.JSONLD = append(vm.SEO.JSONLD,
		seo.JSON(seo.Physician(page.Title, absoluteURL(r), page.Specialty)))
	if page.Photo != "" {
		vm.SEO.OG.Image = page.Photo
	}
	renderPage(w, r, "provider", vm)
}
