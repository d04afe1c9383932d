// Package reveal backs the scroll-triggered entrance animations. The server
// renders declarative data attributes that the front-end observer script
// consumes; the hero's staged intro is modelled as an explicit state machine
// so its choreography can be tested and cancelled without a browser.
package reveal

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Config describes one reveal wrapper. Zero values fall back to the defaults
// used across the marketing pages.
type Config struct {
	Threshold     float64       // visible fraction that triggers the reveal
	Margin        string        // viewport margin, CSS syntax
	Duration      time.Duration // transition length
	Delay         time.Duration // stagger offset
	Once          bool          // never revert after the first reveal
	ReducedMotion bool          // skip the transition, render settled
}

// Defaults returns the site-wide reveal settings: trigger at 15% visibility,
// 600ms transition, reveal exactly once.
func Defaults() Config {
	return Config{Threshold: 0.15, Duration: 600 * time.Millisecond, Once: true}
}

// WithDelay returns a copy staggered by d, used to cascade sibling sections.
func (c Config) WithDelay(d time.Duration) Config {
	c.Delay = d
	return c
}

// Attrs renders the config as data attributes for the observer script. When
// the visitor prefers reduced motion the element is marked settled and no
// animation metadata is emitted.
func (c Config) Attrs() template.HTMLAttr {
	if c.ReducedMotion {
		return template.HTMLAttr(`data-reveal="settled"`)
	}
	var b strings.Builder
	b.WriteString(`data-reveal="pending"`)
	fmt.Fprintf(&b, ` data-reveal-threshold="%.2f"`, c.Threshold)
	if c.Margin != "" {
		fmt.Fprintf(&b, ` data-reveal-margin="%s"`, template.HTMLEscapeString(c.Margin))
	}
	fmt.Fprintf(&b, ` data-reveal-duration="%d"`, c.Duration.Milliseconds())
	if c.Delay > 0 {
		fmt.Fprintf(&b, ` data-reveal-delay="%d"`, c.Delay.Milliseconds())
	}
	if !c.Once {
		b.WriteString(` data-reveal-repeat="true"`)
	}
	return template.HTMLAttr(b.String())
}
