package carousel

import (
	"context"
	"sync"
	"time"
)

// Autoplay advances a rail on a fixed interval, the hero-banner variant of
// the engine. It pauses on pointer hover and when the visitor prefers
// reduced motion, and restarts its timer whenever the user navigates
// manually so a click is never immediately followed by an automatic step.
type Autoplay struct {
	interval time.Duration
	advance  func()

	mu     sync.Mutex
	paused bool
	reset  chan struct{}
	done   chan struct{}
}

// NewAutoplay returns a stopped autoplay timer. advance is invoked once per
// interval while running; it must be safe to call from another goroutine.
func NewAutoplay(interval time.Duration, advance func()) *Autoplay {
	if interval <= 0 {
		interval = 6 * time.Second
	}
	return &Autoplay{
		interval: interval,
		advance:  advance,
		reset:    make(chan struct{}, 1),
	}
}

// Start runs the timer until ctx is cancelled. When reducedMotion is set the
// timer never fires; the rail stays wherever the visitor put it.
func (a *Autoplay) Start(ctx context.Context, reducedMotion bool) {
	if reducedMotion {
		return
	}
	a.mu.Lock()
	if a.done != nil {
		a.mu.Unlock()
		return
	}
	a.done = make(chan struct{})
	done := a.done
	a.mu.Unlock()

	go func() {
		defer close(done)
		timer := time.NewTimer(a.interval)
		defer timer.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-a.reset:
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(a.interval)
			case <-timer.C:
				a.mu.Lock()
				paused := a.paused
				a.mu.Unlock()
				if !paused {
					a.advance()
				}
				timer.Reset(a.interval)
			}
		}
	}()
}

// Pause suspends automatic advancement (pointer entered the rail).
func (a *Autoplay) Pause() {
	a.mu.Lock()
	a.paused = true
	a.mu.Unlock()
}

// Resume restarts advancement after a Pause (pointer left the rail).
func (a *Autoplay) Resume() {
	a.mu.Lock()
	a.paused = false
	a.mu.Unlock()
	a.Reset()
}

// Reset restarts the interval, called on every manual navigation.
func (a *Autoplay) Reset() {
	select {
	case a.reset <- struct{}{}:
	default:
	}
}
