package main

import (
	"net/http"

	"clinicaacosta.org/clinic-web/internal/i18n"
	mw "clinicaacosta.org/clinic-web/internal/middleware"
)

type servicesView struct {
	Title    string
	Subtitle string
	Services []i18n.Service
	Rail     railView

	// Detail is the service opened in the side panel, nil when closed.
	Detail    *i18n.Service
	BackLabel string
}

func buildServicesView(lang, detailKey string) servicesView {
	services := bundle.Services(lang, "services.list")
	v := servicesView{
		Title:     bundle.T(lang, "services.title"),
		Subtitle:  bundle.T(lang, "services.subtitle"),
		Services:  services,
		Rail:      buildRailView("/services/rail", lang, len(services), servicesCloneDepth, 0),
		BackLabel: bundle.T(lang, "services.detail.back"),
	}
	if detailKey != "" {
		for i := range services {
			if services[i].Key == detailKey {
				v.Detail = &services[i]
				break
			}
		}
	}
	return v
}

// ServicesHandler renders the services page; ?detail= opens one service in
// the side panel.
func ServicesHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	view := buildServicesView(lang, r.URL.Query().Get("detail"))

	vm := newPageData(r, view.Title)
	vm.Services = view
	setSEO(&vm, r, view.Subtitle)
	renderPage(w, r, "services", vm)
}

// ServicesRailFrag advances the services carousel one slide and re-renders
// the rail.
func ServicesRailFrag(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	services := bundle.Services(lang, "services.list")
	n := len(services)
	if n == 0 {
		http.NotFound(w, r)
		return
	}
	active, dir := railParams(r, n)
	next := stepIndex(n, servicesCloneDepth, active, dir)

	data := map[string]any{
		"Lang":     lang,
		"Services": services,
		"Rail":     buildRailView("/services/rail", lang, n, servicesCloneDepth, next),
	}
	renderTemplate(w, r, "frag_services_rail", data)
}
