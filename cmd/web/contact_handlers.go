package main

import (
	"errors"
	"net/http"

	"clinicaacosta.org/clinic-web/internal/contact"
	mw "clinicaacosta.org/clinic-web/internal/middleware"
	"clinicaacosta.org/clinic-web/internal/relay"
)

type contactOption struct {
	Value    string
	Label    string
	Selected bool
}

type contactFormView struct {
	Lang  string
	Title string

	NameLabel    string
	EmailLabel   string
	PhoneLabel   string
	ReasonLabel  string
	TypeLabel    string
	DoctorLabel  string
	MessageLabel string
	SubmitLabel  string

	Reasons []contactOption
	Types   []contactOption
	Doctors []string

	Values     contact.Submission
	ErrorField string
	ErrorMsg   string
	CSRFToken  string
}

type contactSuccessView struct {
	Lang    string
	Title   string
	Body    string
	Dismiss string
}

func buildContactForm(r *http.Request, values contact.Submission) contactFormView {
	lang := mw.Lang(r)
	v := contactFormView{
		Lang:  lang,
		Title: bundle.T(lang, "contact.title"),

		NameLabel:    bundle.T(lang, "contact.field.name"),
		EmailLabel:   bundle.T(lang, "contact.field.email"),
		PhoneLabel:   bundle.T(lang, "contact.field.phone"),
		ReasonLabel:  bundle.T(lang, "contact.field.reason"),
		TypeLabel:    bundle.T(lang, "contact.field.type"),
		DoctorLabel:  bundle.T(lang, "contact.field.doctor"),
		MessageLabel: bundle.T(lang, "contact.field.message"),
		SubmitLabel:  bundle.T(lang, "contact.submit"),

		Doctors:   plans.Providers(),
		Values:    values,
		CSRFToken: mw.GetSession(r).CSRFToken,
	}
	reasons := []struct {
		val contact.Reason
		key string
	}{
		{contact.ReasonWell, "contact.reason.well"},
		{contact.ReasonSick, "contact.reason.sick"},
		{contact.ReasonVaccine, "contact.reason.vaccine"},
		{contact.ReasonOther, "contact.reason.other"},
	}
	for _, rs := range reasons {
		v.Reasons = append(v.Reasons, contactOption{
			Value:    string(rs.val),
			Label:    bundle.T(lang, rs.key),
			Selected: values.Reason == rs.val,
		})
	}
	v.Types = []contactOption{
		{Value: string(contact.TypeNew), Label: bundle.T(lang, "contact.type.new"), Selected: values.AppointmentType != contact.TypeFollowUp},
		{Value: string(contact.TypeFollowUp), Label: bundle.T(lang, "contact.type.followup"), Selected: values.AppointmentType == contact.TypeFollowUp},
	}
	return v
}

// ContactHandler renders the appointment request form.
func ContactHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	view := buildContactForm(r, contact.Submission{})

	vm := newPageData(r, view.Title)
	vm.Contact = view
	setSEO(&vm, r, i18nOrDefault(lang, "brand.tagline", ""))
	renderPage(w, r, "contact", vm)
}

// ContactSubmitHandler validates a submission and relays it. A validation
// failure re-renders the form with the first failing field highlighted; a
// relay failure keeps the form populated for resubmission.
func ContactSubmitHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	sub := contact.Submission{
		PatientName:     r.PostFormValue("patient_name"),
		Email:           r.PostFormValue("email"),
		Phone:           r.PostFormValue("phone"),
		Reason:          contact.ParseReason(r.PostFormValue("reason")),
		AppointmentType: contact.ParseAppointmentType(r.PostFormValue("appointment_type")),
		PreferredDoctor: r.PostFormValue("preferred_doctor"),
		Message:         r.PostFormValue("message"),
		Honeypot:        r.PostFormValue("botcheck"),
	}

	if ferr := sub.Validate(); ferr != nil {
		view := buildContactForm(r, sub)
		view.ErrorField = ferr.Field
		view.ErrorMsg = bundle.T(lang, ferr.MessageKey)
		renderContactResult(w, r, "frag_contact_form", "contact", view)
		return
	}

	if err := relayClient.Submit(r.Context(), sub); err != nil {
		view := buildContactForm(r, sub)
		view.ErrorMsg = bundle.T(lang, "contact.error.generic")
		var remote *relay.ErrRemote
		if errors.As(err, &remote) && remote.Reason != "" {
			view.ErrorMsg = remote.Reason
		}
		renderContactResult(w, r, "frag_contact_form", "contact", view)
		return
	}

	success := contactSuccessView{
		Lang:    lang,
		Title:   bundle.T(lang, "contact.success.title"),
		Body:    bundle.TFormat(lang, "contact.success.body", map[string]any{"name": sub.PatientName}),
		Dismiss: bundle.T(lang, "contact.success.dismiss"),
	}
	renderContactResult(w, r, "frag_contact_success", "contact_success", success)
}

// renderContactResult swaps just the form region for HTMX requests and falls
// back to a full page render otherwise.
func renderContactResult(w http.ResponseWriter, r *http.Request, frag, page string, view any) {
	if mw.IsHTMX(r.Context()) {
		renderTemplate(w, r, frag, view)
		return
	}
	lang := mw.Lang(r)
	vm := newPageData(r, bundle.T(lang, "contact.title"))
	vm.Contact = view
	setSEO(&vm, r, i18nOrDefault(lang, "brand.tagline", ""))
	renderPage(w, r, page, vm)
}
