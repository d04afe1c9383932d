package main

import (
	"errors"
	"net/http"

	"clinicaacosta.org/clinic-web/internal/content"
	"clinicaacosta.org/clinic-web/internal/format"
	mw "clinicaacosta.org/clinic-web/internal/middleware"
	"clinicaacosta.org/clinic-web/internal/reveal"
)

// AboutHandler renders the mission page from the markdown store, with the
// values list from the dictionary alongside.
func AboutHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	page, err := pages.Get("pages", "about", lang)
	if errors.Is(err, content.ErrNotFound) {
		http.Redirect(w, r, "/coming-soon", http.StatusFound)
		return
	}
	if err != nil {
		http.Error(w, "content unavailable", http.StatusInternalServerError)
		return
	}

	updated := ""
	if !page.UpdatedAt.IsZero() {
		updated = format.FmtDate(page.UpdatedAt, lang)
	}
	view := map[string]any{
		"Page":     page,
		"Rendered": content.Render(page.Body),
		"Updated":  updated,
		"Mission":  bundle.T(lang, "about.mission"),
		"Values":   bundle.TStrings(lang, "about.values"),
		"Attrs":    sectionAttrs(r),
	}

	vm := newPageData(r, page.Title)
	vm.About = view
	desc := page.SEO.Description
	if desc == "" {
		desc = page.Summary
	}
	setSEO(&vm, r, desc)
	renderPage(w, r, "about", vm)
}

func sectionAttrs(r *http.Request) any {
	c := reveal.Defaults()
	c.ReducedMotion = mw.ReducedMotion(r.Context())
	return c.Attrs()
}
