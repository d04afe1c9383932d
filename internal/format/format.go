package format

import (
	"strings"
	"time"
)

// FmtDate formats a date in a locale-friendly short form.
func FmtDate(t time.Time, lang string) string {
	switch strings.ToLower(lang) {
	case "es":
		return t.Format("02/01/2006")
	default:
		return t.Format("Jan 2, 2006")
	}
}

// FmtPhone renders a raw digit string as a US display number, e.g.
// "4075551234" => "(407) 555-1234". Inputs that are not ten digits come back
// unchanged.
func FmtPhone(raw string) string {
	digits := make([]rune, 0, len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) != 10 {
		return raw
	}
	d := string(digits)
	return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
}
