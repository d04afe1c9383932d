package main

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"clinicaacosta.org/clinic-web/internal/format"
	handlersPkg "clinicaacosta.org/clinic-web/internal/handlers"
	mw "clinicaacosta.org/clinic-web/internal/middleware"
	"clinicaacosta.org/clinic-web/internal/nav"
	"clinicaacosta.org/clinic-web/internal/seo"
	"clinicaacosta.org/clinic-web/internal/theme"
)

func templates() (*template.Template, error) {
	if devMode {
		return parseTemplates()
	}
	if tmplCache == nil {
		return nil, fmt.Errorf("template cache not initialized")
	}
	return tmplCache, nil
}

// renderPage executes a full page template with the shared layout partials.
func renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	renderTemplate(w, r, name, data)
}

// renderTemplate executes a named template (page or fragment). In dev mode,
// templates are reparsed on each request.
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	t, err := templates()
	if err != nil {
		http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}

// i18nOrDefault looks a key up in the request language; an untranslated key
// falls back to the given default rather than echoing the key at visitors.
func i18nOrDefault(lang, key, def string) string {
	if v := bundle.T(lang, key); v != key {
		return v
	}
	return def
}

// clinicPhone is the front-desk line, kept as raw digits; display and tel:
// forms are derived from it.
const clinicPhone = "4075550134"

// newPageData fills the layout chrome shared by every page.
func newPageData(r *http.Request, title string) handlersPkg.PageData {
	lang := mw.Lang(r)
	year := strconv.Itoa(time.Now().Year())
	return handlersPkg.PageData{
		Title:       title,
		Lang:        lang,
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path),
		Breadcrumbs: nav.Breadcrumbs(r.URL.Path),
		Analytics:   handlersPkg.LoadAnalyticsFromEnv(),
		Tr:          func(key string) string { return bundle.T(lang, key) },
		ThemeCSS:    theme.Clinic.CSS(),
		Hours:       bundle.TStrings(lang, "footer.hours"),
		Phone:       format.FmtPhone(clinicPhone),
		PhoneHref:   template.URL("tel:+1" + clinicPhone),
		Copyright:   bundle.TFormat(lang, "footer.copyright", map[string]any{"year": year}),
	}
}

// setSEO fills the metadata block with the site-wide defaults.
func setSEO(vm *handlersPkg.PageData, r *http.Request, desc string) {
	brand := i18nOrDefault(vm.Lang, "brand.name", "Clínica Acosta")
	vm.SEO.Title = vm.Title + " | " + brand
	vm.SEO.Description = desc
	vm.SEO.Canonical = absoluteURL(r)
	vm.SEO.OG.URL = vm.SEO.Canonical
	vm.SEO.OG.SiteName = brand
	vm.SEO.OG.Title = vm.SEO.Title
	vm.SEO.OG.Description = vm.SEO.Description
	vm.SEO.OG.Type = "website"
	vm.SEO.Twitter.Card = "summary_large_image"
	vm.SEO.Alternates = buildAlternates(r)
}

// absoluteURL rebuilds the canonical URL for the current path from the
// configured base, dropping query noise like ?hl= switches.
func absoluteURL(r *http.Request) string {
	base := cfg.BaseURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}
	return base + r.URL.Path
}

// buildAlternates emits hreflang links for each supported language plus
// x-default pointing at the fallback.
func buildAlternates(r *http.Request) []seo.Alternate {
	out := make([]seo.Alternate, 0, len(cfg.SupportedLangs)+1)
	for _, lang := range cfg.SupportedLangs {
		out = append(out, seo.Alternate{
			Href:     absoluteURL(r) + "?hl=" + lang,
			Hreflang: lang,
		})
	}
	out = append(out, seo.Alternate{Href: absoluteURL(r), Hreflang: "x-default"})
	return out
}
