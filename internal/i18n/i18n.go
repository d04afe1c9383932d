package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Service is a structured dictionary entry describing one clinic service.
// The services rail and the services page detail panel both render from
// these records.
type Service struct {
	Key             string   `json:"key"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

// Bundle is the process-wide translation dictionary. Locale files are JSON
// objects whose values are strings, arrays of strings, or arrays of service
// records; values are bucketed by type at load and immutable afterwards.
type Bundle struct {
	strings  map[string]map[string]string
	lists    map[string]map[string][]string
	services map[string]map[string][]Service

	fallback  string
	supported []string
	matcher   language.Matcher
}

// Load reads <lang>.json for each supported language from dir. A missing
// file is tolerated for non-fallback languages.
func Load(dir string, fallback string, supported []string) (*Bundle, error) {
	if len(supported) == 0 {
		supported = []string{"es", "en"}
	}
	b := &Bundle{
		strings:   map[string]map[string]string{},
		lists:     map[string]map[string][]string{},
		services:  map[string]map[string][]Service{},
		fallback:  fallback,
		supported: append([]string(nil), supported...),
	}
	tags := make([]language.Tag, 0, len(supported)+1)
	tags = append(tags, language.Make(fallback))
	for _, l := range supported {
		if l != fallback {
			tags = append(tags, language.Make(l))
		}
	}
	b.matcher = language.NewMatcher(tags)

	for _, l := range supported {
		path := filepath.Join(dir, l+".json")
		raw, err := os.ReadFile(path)
		if err != nil {
			if l == fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		if err := b.ingest(l, raw); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", l, err)
		}
	}
	if _, ok := b.strings[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}
	return b, nil
}

func (b *Bundle) ingest(lang string, raw []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	b.strings[lang] = map[string]string{}
	b.lists[lang] = map[string][]string{}
	b.services[lang] = map[string][]Service{}
	for key, val := range m {
		var s string
		if err := json.Unmarshal(val, &s); err == nil {
			b.strings[lang][key] = s
			continue
		}
		var list []string
		if err := json.Unmarshal(val, &list); err == nil {
			b.lists[lang][key] = list
			continue
		}
		var svcs []Service
		if err := json.Unmarshal(val, &svcs); err == nil {
			b.services[lang][key] = svcs
			continue
		}
		return fmt.Errorf("key %q: unsupported value shape", key)
	}
	return nil
}

// Supported returns the configured language codes, sorted.
func (b *Bundle) Supported() []string {
	out := append([]string(nil), b.supported...)
	sort.Strings(out)
	return out
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// IsSupported reports whether lang is a configured language code.
func (b *Bundle) IsSupported(lang string) bool {
	for _, l := range b.supported {
		if l == lang {
			return true
		}
	}
	return false
}

// T returns the string for key in lang, falling back to the default language
// and finally to the key itself. Lookups never fail: a key whose value is
// not a string also degrades to the key.
func (b *Bundle) T(lang, key string) string {
	if lang != "" {
		if v, ok := b.strings[lang][key]; ok {
			return v
		}
	}
	if v, ok := b.strings[b.fallback][key]; ok {
		return v
	}
	return key
}

// TFormat is T with {name}-style placeholder substitution. Placeholders
// without a supplied value are left verbatim rather than blanked.
func (b *Bundle) TFormat(lang, key string, params map[string]any) string {
	tmpl := b.T(lang, key)
	if len(params) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, 2*len(params))
	for name, val := range params {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(val))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// TStrings returns the string-array value for key, or an empty slice when
// the key is absent or holds a different shape.
func (b *Bundle) TStrings(lang, key string) []string {
	if lang != "" {
		if v, ok := b.lists[lang][key]; ok {
			return append([]string(nil), v...)
		}
	}
	if v, ok := b.lists[b.fallback][key]; ok {
		return append([]string(nil), v...)
	}
	return []string{}
}

// Services returns the service-record array for key, or an empty slice when
// absent.
func (b *Bundle) Services(lang, key string) []Service {
	if lang != "" {
		if v, ok := b.services[lang][key]; ok {
			return append([]Service(nil), v...)
		}
	}
	if v, ok := b.services[b.fallback][key]; ok {
		return append([]Service(nil), v...)
	}
	return []Service{}
}

// Resolve chooses the best supported language for an Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return b.fallback
	}
	// matcher tag order: fallback first, then the remaining supported codes
	if idx == 0 {
		return b.fallback
	}
	i := 1
	for _, l := range b.supported {
		if l == b.fallback {
			continue
		}
		if i == idx {
			return l
		}
		i++
	}
	return b.fallback
}
