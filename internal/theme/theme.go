// Package theme is the single source of the site palette. Every component
// reads color by semantic role instead of re-declaring hex tables, and the
// layout emits the palette once as CSS custom properties.
package theme

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
)

// Role names a semantic color slot.
type Role string

const (
	RolePrimary    Role = "primary"
	RolePrimaryAlt Role = "primary-alt"
	RoleAccent     Role = "accent"
	RoleSurface    Role = "surface"
	RoleSurfaceAlt Role = "surface-alt"
	RoleInk        Role = "ink"
	RoleInkMuted   Role = "ink-muted"
	RoleSuccess    Role = "success"
	RoleDanger     Role = "danger"
)

// Palette maps semantic roles to color values.
type Palette map[Role]string

// Clinic is the production palette.
var Clinic = Palette{
	RolePrimary:    "#0e7490",
	RolePrimaryAlt: "#155e75",
	RoleAccent:     "#f59e0b",
	RoleSurface:    "#ffffff",
	RoleSurfaceAlt: "#f0f9ff",
	RoleInk:        "#0f172a",
	RoleInkMuted:   "#475569",
	RoleSuccess:    "#15803d",
	RoleDanger:     "#b91c1c",
}

// Color returns the value for a role, or a loud fallback for an unknown one
// so a missing entry is visible in development rather than silently black.
func (p Palette) Color(role Role) string {
	if v, ok := p[role]; ok {
		return v
	}
	return "#ff00ff"
}

// CSS renders the palette as custom properties on :root, stable order.
func (p Palette) CSS() template.CSS {
	roles := make([]string, 0, len(p))
	for r := range p {
		roles = append(roles, string(r))
	}
	sort.Strings(roles)
	var b strings.Builder
	b.WriteString(":root{")
	for _, r := range roles {
		fmt.Fprintf(&b, "--color-%s:%s;", r, p[Role(r)])
	}
	b.WriteString("}")
	return template.CSS(b.String())
}
