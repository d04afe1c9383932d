package main

import (
	"net/http"

	mw "clinicaacosta.org/clinic-web/internal/middleware"
)

type insuranceView struct {
	Title       string
	Subtitle    string
	Placeholder string
	AllLabel    string
	EmptyLabel  string

	Providers []string
	Provider  string
	Query     string
	Plans     []string
}

func buildInsuranceView(lang, provider, query string) insuranceView {
	return insuranceView{
		Title:       bundle.T(lang, "insurance.title"),
		Subtitle:    bundle.T(lang, "insurance.subtitle"),
		Placeholder: bundle.T(lang, "insurance.search.placeholder"),
		AllLabel:    bundle.T(lang, "insurance.provider.all"),
		EmptyLabel:  bundle.T(lang, "insurance.empty"),
		Providers:   plans.Providers(),
		Provider:    provider,
		Query:       query,
		Plans:       plans.Search(lang, provider, query),
	}
}

// InsuranceHandler renders the plan lookup page with the full accepted list.
func InsuranceHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	q := r.URL.Query()
	view := buildInsuranceView(lang, q.Get("provider"), q.Get("q"))

	vm := newPageData(r, view.Title)
	vm.Insurance = view
	setSEO(&vm, r, view.Subtitle)
	renderPage(w, r, "insurance", vm)
}

// InsuranceResultsFrag re-renders the filtered plan list as the visitor
// types or changes provider.
func InsuranceResultsFrag(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	q := r.URL.Query()
	view := buildInsuranceView(lang, q.Get("provider"), q.Get("q"))
	renderTemplate(w, r, "frag_insurance_results", view)
}
