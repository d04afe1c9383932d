package middleware

import (
	"context"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyIsHTMX   ctxKey = "is_htmx"
	ctxKeySession  ctxKey = "session"
	ctxKeyLocaleFB ctxKey = "locale_fallback"
	ctxKeyReduced  ctxKey = "reduced_motion"
)

// WithHTMX marks request as HTMX
func WithHTMX(ctx context.Context, is bool) context.Context {
	return context.WithValue(ctx, ctxKeyIsHTMX, is)
}

// IsHTMX returns whether this is an htmx request
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyIsHTMX).(bool)
	return v
}

// WithReducedMotion records the visitor's reduced-motion preference, sent by
// the client as the Sec-CH-Prefers-Reduced-Motion hint.
func WithReducedMotion(ctx context.Context, pref bool) context.Context {
	return context.WithValue(ctx, ctxKeyReduced, pref)
}

// ReducedMotion reports the visitor's reduced-motion preference.
func ReducedMotion(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyReduced).(bool)
	return v
}
