package main

import (
	"html/template"
	"time"

	"clinicaacosta.org/clinic-web/internal/i18n"
	"clinicaacosta.org/clinic-web/internal/reveal"
)

// heroStagger is the gap between the hero's staged entrances, matching the
// choreography the observer script plays on load.
const heroStagger = 350 * time.Millisecond

type heroView struct {
	Eyebrow      string
	Headline     string
	Body         string
	CTAPrimary   string
	CTASecondary string

	EyebrowAttrs  template.HTMLAttr
	HeadlineAttrs template.HTMLAttr
	BodyAttrs     template.HTMLAttr
	CTAAttrs      template.HTMLAttr
}

type homeView struct {
	Hero     heroView
	Services []i18n.Service
	Rail     railView

	InsurancePrompt string
	InsuranceCTA    string

	SectionAttrs template.HTMLAttr
}

func buildHomeView(lang string, reducedMotion bool) homeView {
	base := reveal.Defaults()
	base.ReducedMotion = reducedMotion

	hero := heroView{
		Eyebrow:      bundle.T(lang, "home.hero.eyebrow"),
		Headline:     bundle.T(lang, "home.hero.headline"),
		Body:         bundle.T(lang, "home.hero.body"),
		CTAPrimary:   bundle.T(lang, "home.hero.cta.primary"),
		CTASecondary: bundle.T(lang, "home.hero.cta.secondary"),

		EyebrowAttrs:  base.Attrs(),
		HeadlineAttrs: base.WithDelay(heroStagger).Attrs(),
		BodyAttrs:     base.WithDelay(2 * heroStagger).Attrs(),
		CTAAttrs:      base.WithDelay(3 * heroStagger).Attrs(),
	}

	services := bundle.Services(lang, "services.list")
	return homeView{
		Hero:            hero,
		Services:        services,
		Rail:            buildRailView("/services/rail", lang, len(services), servicesCloneDepth, 0),
		InsurancePrompt: bundle.T(lang, "home.insurance.prompt"),
		InsuranceCTA:    bundle.T(lang, "home.insurance.cta"),
		SectionAttrs:    base.Attrs(),
	}
}
