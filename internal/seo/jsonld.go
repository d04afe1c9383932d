package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// MedicalClinic returns a schema.org MedicalClinic payload.
func MedicalClinic(name, url, phone, street, city, region, postal string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "MedicalClinic",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if phone != "" {
		m["telephone"] = phone
	}
	if street != "" {
		m["address"] = map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   street,
			"addressLocality": city,
			"addressRegion":   region,
			"postalCode":      postal,
		}
	}
	return m
}

// Physician returns a schema.org Physician payload for a provider profile.
func Physician(name, url, specialty string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Physician",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if specialty != "" {
		m["medicalSpecialty"] = specialty
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	return m
}
