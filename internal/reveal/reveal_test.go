package reveal

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestAttrsDefaults(t *testing.T) {
	got := string(Defaults().Attrs())
	for _, want := range []string{`data-reveal="pending"`, `data-reveal-threshold="0.15"`, `data-reveal-duration="600"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in %q", want, got)
		}
	}
	if strings.Contains(got, "data-reveal-repeat") {
		t.Fatalf("once-by-default must not emit repeat flag: %q", got)
	}
}

func TestAttrsRepeatAndDelay(t *testing.T) {
	cfg := Defaults().WithDelay(150 * time.Millisecond)
	cfg.Once = false
	got := string(cfg.Attrs())
	if !strings.Contains(got, `data-reveal-delay="150"`) {
		t.Fatalf("missing delay in %q", got)
	}
	if !strings.Contains(got, `data-reveal-repeat="true"`) {
		t.Fatalf("missing repeat flag in %q", got)
	}
}

func TestAttrsReducedMotionRendersSettled(t *testing.T) {
	cfg := Defaults()
	cfg.ReducedMotion = true
	if got := string(cfg.Attrs()); got != `data-reveal="settled"` {
		t.Fatalf("got %q", got)
	}
}

func TestSequenceAdvancesInOrder(t *testing.T) {
	var seen []Stage
	s := NewSequence(time.Millisecond, func(st Stage) { seen = append(seen, st) })
	if s.Current() != StageIdle {
		t.Fatalf("expected idle start, got %s", s.Current())
	}
	for s.Advance() {
	}
	want := []Stage{StageEyebrow, StageHeadline, StageBody, StageCTAs}
	if len(seen) != len(want) {
		t.Fatalf("stages = %v", seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("stage %d = %s, want %s", i, seen[i], want[i])
		}
	}
	if !s.Done() {
		t.Fatal("expected terminal stage")
	}
}

func TestSequenceSkipJumpsToTerminal(t *testing.T) {
	var last Stage
	s := NewSequence(time.Hour, func(st Stage) { last = st })
	s.Skip()
	if !s.Done() || last != StageCTAs {
		t.Fatalf("skip did not settle: current=%s last=%s", s.Current(), last)
	}
	// idempotent
	last = ""
	s.Skip()
	if last != "" {
		t.Fatal("second skip must not re-fire the callback")
	}
}

func TestSequenceRunCompletes(t *testing.T) {
	done := make(chan struct{})
	s := NewSequence(2*time.Millisecond, func(st Stage) {
		if st == StageCTAs {
			close(done)
		}
	})
	go s.Run(context.Background())
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sequence never completed")
	}
}

func TestSequenceRunCancellation(t *testing.T) {
	s := NewSequence(50*time.Millisecond, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Run(ctx)
	if s.Done() {
		t.Fatal("cancelled run must not reach terminal stage")
	}
}
