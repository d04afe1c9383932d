package main

import (
	"net/http"

	"clinicaacosta.org/clinic-web/internal/format"
	mw "clinicaacosta.org/clinic-web/internal/middleware"
	"clinicaacosta.org/clinic-web/internal/seo"
)

// HomeHandler renders the landing page.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	title := i18nOrDefault(lang, "brand.name", "Clínica Acosta")
	desc := i18nOrDefault(lang, "brand.tagline", "Caring for your family, in your language")

	vm := newPageData(r, title)
	vm.Home = buildHomeView(lang, mw.ReducedMotion(r.Context()))
	setSEO(&vm, r, desc)
	// The landing page carries the organization and sitelinks markup.
	vm.SEO.Title = title + " — " + desc
	vm.SEO.OG.Title = vm.SEO.Title
	vm.SEO.JSONLD = append(vm.SEO.JSONLD,
		seo.JSON(seo.MedicalClinic(title, cfg.BaseURL, format.FmtPhone(clinicPhone),
			"1200 Semoran Blvd", "Orlando", "FL", "32807")),
		seo.JSON(seo.WebSite(title, cfg.BaseURL)),
	)

	renderPage(w, r, "home", vm)
}

// ComingSoonHandler renders the placeholder page for sections still being
// written.
func ComingSoonHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	title := i18nOrDefault(lang, "coming-soon.title", "Coming soon")
	vm := newPageData(r, title)
	setSEO(&vm, r, i18nOrDefault(lang, "coming-soon.body", ""))
	vm.SEO.Robots = "noindex"
	renderPage(w, r, "coming_soon", vm)
}
