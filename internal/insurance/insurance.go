// Package insurance answers "do you take my plan?" It is a derived view
// over a small static mapping from provider to accepted plan names, with
// free-text search that ignores case and diacritics so "Jiménez" and
// "jimenez" find the same results.
package insurance

import (
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Catalog maps provider display names to their accepted plan lists.
type Catalog struct {
	plans map[string][]string
}

// Default is the clinic's current acceptance list.
func Default() *Catalog {
	return &Catalog{plans: map[string][]string{
		"Dr. Jaime A. Acosta": {
			"Aetna",
			"CIGNA",
			"Florida Blue",
			"Humana",
			"Medicaid",
			"UnitedHealthcare",
		},
		"Dra. María Jiménez": {
			"Aetna",
			"Ambetter",
			"CIGNA",
			"Florida Blue",
			"Simply Healthcare",
			"Sunshine Health",
		},
		"Dr. Luis Peña": {
			"CIGNA",
			"Humana",
			"Medicare",
			"Oscar Health",
			"UnitedHealthcare",
		},
	}}
}

// NewCatalog builds a catalog from an explicit mapping, mainly for tests.
func NewCatalog(plans map[string][]string) *Catalog {
	cp := make(map[string][]string, len(plans))
	for k, v := range plans {
		cp[k] = append([]string(nil), v...)
	}
	return &Catalog{plans: cp}
}

// Providers lists the provider names, alphabetically for the dropdown.
func (c *Catalog) Providers() []string {
	out := make([]string, 0, len(c.plans))
	for name := range c.plans {
		out = append(out, name)
	}
	coll := collate.New(language.Spanish, collate.IgnoreCase)
	coll.SortStrings(out)
	return out
}

// Search returns the accepted plans matching the query. An empty provider
// means the deduplicated union of every provider's plans; an unknown
// provider yields an empty set, not an error. Matching is a case- and
// diacritic-insensitive substring test, and an empty query filters nothing.
// Results are sorted with the collation rules for lang so repeated searches
// are stably ordered.
func (c *Catalog) Search(lang, provider, query string) []string {
	var candidates []string
	if strings.TrimSpace(provider) == "" {
		seen := map[string]struct{}{}
		for _, plans := range c.plans {
			for _, p := range plans {
				if _, ok := seen[p]; ok {
					continue
				}
				seen[p] = struct{}{}
				candidates = append(candidates, p)
			}
		}
	} else {
		candidates = append(candidates, c.plans[provider]...)
	}

	needle := Fold(query)
	out := make([]string, 0, len(candidates))
	for _, p := range candidates {
		if needle == "" || strings.Contains(Fold(p), needle) {
			out = append(out, p)
		}
	}

	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Spanish
	}
	collate.New(tag, collate.IgnoreCase).SortStrings(out)
	return out
}

// foldTransform strips combining marks after canonical decomposition, the
// usual accent-removal chain.
var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and removes diacritics for matching purposes.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransform, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
