package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"clinicaacosta.org/clinic-web/internal/i18n"
)

// langCookieName persists the visitor's language choice across sessions.
const langCookieName = "lang"

// langCookieMaxAge keeps the preference for one year.
const langCookieMaxAge = 365 * 24 * time.Hour

// Locale resolves the active language for the request and stores it in the
// session and the `lang` cookie. Resolution order: explicit ?hl= switch,
// session, cookie, Accept-Language, bundle fallback. An explicit switch
// refreshes the cookie's one-year expiry.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), ctxKeyLocaleFB, bundle.Fallback())
			r = r.WithContext(ctx)
			s := GetSession(r)
			if q := strings.ToLower(r.URL.Query().Get("hl")); q != "" && bundle.IsSupported(q) {
				s.Locale = q
				s.MarkDirty()
				setLangCookie(w, q)
			} else if s.Locale == "" {
				if c, err := r.Cookie(langCookieName); err == nil && bundle.IsSupported(strings.ToLower(c.Value)) {
					s.Locale = strings.ToLower(c.Value)
					s.MarkDirty()
				} else {
					s.Locale = bundle.Resolve(r.Header.Get("Accept-Language"))
					s.MarkDirty()
					setLangCookie(w, s.Locale)
				}
			}
			if s.Locale != "" {
				w.Header().Set("Content-Language", s.Locale)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func setLangCookie(w http.ResponseWriter, lang string) {
	http.SetCookie(w, &http.Cookie{
		Name:     langCookieName,
		Value:    lang,
		Path:     "/",
		Secure:   sessionSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(langCookieMaxAge),
		MaxAge:   int(langCookieMaxAge / time.Second),
	})
}

// Lang returns the request's active language, falling back to the bundle
// default recorded in context, finally to Spanish (the clinic's primary
// audience).
func Lang(r *http.Request) string {
	if s := GetSession(r); s != nil && s.Locale != "" {
		return s.Locale
	}
	if v := r.Context().Value(ctxKeyLocaleFB); v != nil {
		if fb, ok := v.(string); ok && fb != "" {
			return fb
		}
	}
	return "es"
}

// VaryLocale sets Vary header for Accept-Language on dynamic responses
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Language")
		next.ServeHTTP(w, r)
	})
}

// Motion records the visitor's reduced-motion client hint so reveal and
// autoplay rendering can settle immediately.
func Motion(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pref := strings.Contains(strings.ToLower(r.Header.Get("Sec-CH-Prefers-Reduced-Motion")), "reduce")
		next.ServeHTTP(w, r.WithContext(WithReducedMotion(r.Context(), pref)))
	})
}
