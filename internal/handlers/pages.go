// Package handlers holds the shared view models passed to page templates.
package handlers

import (
	"html/template"

	"clinicaacosta.org/clinic-web/internal/nav"
	"clinicaacosta.org/clinic-web/internal/seo"
)

// PageData is the generic view model for pages using the shared layout.
type PageData struct {
	Title     string
	Lang      string
	SEO       seo.Meta
	Analytics Analytics

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	// Tr resolves an i18n key in the request language; templates call it for
	// shared chrome labels.
	Tr func(key string) string

	ThemeCSS  template.CSS
	Hours     []string
	Phone     string       // display form, e.g. "(407) 555-0134"
	PhoneHref template.URL // tel: scheme is outside the template URL allowlist
	Copyright string

	// Optional per-page view model payloads
	Home      any
	About     any
	Services  any
	Gallery   any
	Contact   any
	Provider  any
	Insurance any
	Content   any
}
