package middleware

import (
	"net/http"
)

// HTMX flags requests issued by the htmx runtime (carousel steps, insurance
// search, contact submission) so handlers can answer with a fragment instead
// of re-rendering the whole page around it.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is := r.Header.Get("HX-Request") == "true"
		next.ServeHTTP(w, r.WithContext(WithHTMX(r.Context(), is)))
	})
}
