package reveal

import (
	"context"
	"sync"
	"time"
)

// Stage is one step of the hero's staged intro.
type Stage string

const (
	StageIdle     Stage = "idle"
	StageEyebrow  Stage = "eyebrow"
	StageHeadline Stage = "headline"
	StageBody     Stage = "body"
	StageCTAs     Stage = "ctas"
)

// stageOrder drives Advance; StageCTAs is terminal.
var stageOrder = []Stage{StageIdle, StageEyebrow, StageHeadline, StageBody, StageCTAs}

// Sequence is the hero intro state machine. One scheduler owns all stage
// transitions, replacing chained awaits, so the whole choreography can be
// cancelled in one place on teardown.
type Sequence struct {
	mu      sync.Mutex
	pos     int
	stepGap time.Duration
	onStage func(Stage)
}

// NewSequence builds an idle sequence. onStage is invoked on every
// transition, including the jump performed by Skip; it may be nil.
func NewSequence(stepGap time.Duration, onStage func(Stage)) *Sequence {
	if stepGap <= 0 {
		stepGap = 350 * time.Millisecond
	}
	return &Sequence{stepGap: stepGap, onStage: onStage}
}

// Current returns the stage the sequence has reached.
func (s *Sequence) Current() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stageOrder[s.pos]
}

// Done reports whether the terminal stage has been reached.
func (s *Sequence) Done() bool { return s.Current() == StageCTAs }

// Advance moves to the next stage and reports whether a transition happened.
func (s *Sequence) Advance() bool {
	s.mu.Lock()
	if s.pos >= len(stageOrder)-1 {
		s.mu.Unlock()
		return false
	}
	s.pos++
	stage := stageOrder[s.pos]
	cb := s.onStage
	s.mu.Unlock()
	if cb != nil {
		cb(stage)
	}
	return true
}

// Skip jumps straight to the terminal stage, used for the reduced-motion
// preference where the hero renders settled immediately.
func (s *Sequence) Skip() {
	s.mu.Lock()
	if s.pos == len(stageOrder)-1 {
		s.mu.Unlock()
		return
	}
	s.pos = len(stageOrder) - 1
	cb := s.onStage
	s.mu.Unlock()
	if cb != nil {
		cb(StageCTAs)
	}
}

// Run advances through the remaining stages on the configured cadence until
// done or ctx is cancelled. Cancellation leaves the sequence wherever it
// was; no callback fires afterwards.
func (s *Sequence) Run(ctx context.Context) {
	timer := time.NewTimer(s.stepGap)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			if !s.Advance() {
				return
			}
			if s.Done() {
				return
			}
			timer.Reset(s.stepGap)
		}
	}
}
