// Package carousel implements the infinite-loop rail used by the services
// carousel and the office photo strip. The engine is a pure model of the
// scroll container: it maps between logical item indices and physical slots
// in the padded (clones + originals + clones) sequence, and decides when the
// viewport must be teleported across the clone buffer to fake seamless
// wraparound. It never touches a real viewport, so it can be driven entirely
// from tests and from fragment handlers.
package carousel

import "math"

// epsilon guards boundary checks against sub-pixel jitter so a teleport
// landing exactly on a threshold does not immediately re-trigger.
const epsilon = 0.5

// Engine models one padded scroll rail.
type Engine struct {
	n      int
	clones int

	snapSize  float64 // width of one item including its gap
	railWidth float64 // visible width of the scroll container

	offset      float64 // current physical scroll offset
	teleporting bool    // suppresses boundary checks while a jump is in flight
}

// Plan describes a navigation the caller should apply to the container.
// PreJump, when non-nil, is an instant non-animated offset write that must
// happen before the smooth scroll to Target.
type Plan struct {
	PreJump *float64
	Target  float64
}

// Teleport is an instant, non-animated relocation of the scroll offset by
// exactly ±N×snapSize, landing on the logically-equivalent slot in the
// opposite clone buffer.
type Teleport struct {
	Delta  float64
	Target float64
}

// New returns an engine for n logical items with the given clone padding on
// each side. n must be >= 1 and clones >= 1; out-of-range values are clamped.
func New(n, clones int) *Engine {
	if n < 1 {
		n = 1
	}
	if clones < 1 {
		clones = 1
	}
	return &Engine{n: n, clones: clones}
}

// N reports the logical item count.
func (e *Engine) N() int { return e.n }

// Clones reports the configured clone padding per side.
func (e *Engine) Clones() int { return e.clones }

// cloneCount is the effective padding per side. When n < clones the clone
// slice clamps to the available items, matching ordered.slice(0, clones).
func (e *Engine) cloneCount() int {
	if e.n < e.clones {
		return e.n
	}
	return e.clones
}

// slotCount is the number of physical slots mounted in the container.
func (e *Engine) slotCount() int { return e.n + 2*e.cloneCount() }

// Sequence returns the logical index rendered at each physical slot:
// the last cloneCount originals, then all originals, then the first
// cloneCount originals.
func (e *Engine) Sequence() []int {
	c := e.cloneCount()
	seq := make([]int, 0, e.slotCount())
	for i := e.n - c; i < e.n; i++ {
		seq = append(seq, i)
	}
	for i := 0; i < e.n; i++ {
		seq = append(seq, i)
	}
	for i := 0; i < c; i++ {
		seq = append(seq, i)
	}
	return seq
}

// Ready reports whether layout has provided usable measurements. Navigation
// requests before then are no-ops, not errors.
func (e *Engine) Ready() bool { return e.snapSize > 0 && e.railWidth > 0 }

// SetMetrics records the measured item and viewport widths. On first layout
// the offset lands on logical index 0 without animation; on a re-measure
// (resize) the currently focused logical index is preserved under the new
// dimensions.
func (e *Engine) SetMetrics(snapSize, railWidth float64) {
	if snapSize <= 0 || railWidth <= 0 {
		return
	}
	hadMetrics := e.Ready()
	idx := e.Index()
	e.snapSize = snapSize
	e.railWidth = railWidth
	if hadMetrics {
		e.offset = e.slotOffset(e.cloneCount() + idx)
		return
	}
	e.offset = e.InitialOffset()
}

// centerInset is the extra scroll needed so the active slot sits centered in
// the rail rather than flush left.
func (e *Engine) centerInset() float64 {
	inset := (e.railWidth - e.snapSize) / 2
	if inset < 0 {
		return 0
	}
	return inset
}

// slotOffset is the scroll offset that centers the given physical slot.
func (e *Engine) slotOffset(slot int) float64 {
	return float64(slot)*e.snapSize - e.centerInset()
}

// InitialOffset is the non-animated offset applied on mount: physical slot
// cloneCount, i.e. logical index 0, centered.
func (e *Engine) InitialOffset() float64 {
	return e.slotOffset(e.cloneCount())
}

// Offset reports the current physical scroll offset.
func (e *Engine) Offset() float64 { return e.offset }

// nearestSlot snaps an offset to the closest physical slot.
func (e *Engine) nearestSlot(offset float64) int {
	if e.snapSize <= 0 {
		return 0
	}
	slot := int(math.Round((offset + e.centerInset()) / e.snapSize))
	if slot < 0 {
		slot = 0
	}
	if max := e.slotCount() - 1; slot > max {
		slot = max
	}
	return slot
}

// logicalIndex maps a physical slot back to its item, always in [0, n).
func (e *Engine) logicalIndex(slot int) int {
	return ((slot-e.cloneCount())%e.n + e.n) % e.n
}

// Index is the logical index of the item nearest the current offset.
func (e *Engine) Index() int {
	if !e.Ready() {
		return 0
	}
	return e.logicalIndex(e.nearestSlot(e.offset))
}

// GoTo plans a smooth scroll directly to the given logical index. It returns
// nil before layout has run or for an out-of-range index.
func (e *Engine) GoTo(index int) *Plan {
	if !e.Ready() || index < 0 || index >= e.n {
		return nil
	}
	target := e.slotOffset(e.cloneCount() + index)
	e.offset = target
	return &Plan{Target: target}
}

// StepOne plans a smooth scroll by exactly one slot in the given direction
// (-1 or +1). If the step would animate into the clone buffer, the plan
// carries a pre-jump that instantly recenters the logically-equivalent slot
// in the middle of the physical range first, so the user perceives a single
// smooth transition.
func (e *Engine) StepOne(direction int) *Plan {
	if !e.Ready() {
		return nil
	}
	if direction >= 0 {
		direction = 1
	} else {
		direction = -1
	}
	c := e.cloneCount()
	cur := e.nearestSlot(e.offset)
	var pre *float64
	if target := cur + direction; target < c {
		jump := e.slotOffset(cur + e.n)
		pre = &jump
		cur += e.n
	} else if target >= c+e.n {
		jump := e.slotOffset(cur - e.n)
		pre = &jump
		cur -= e.n
	}
	target := e.slotOffset(cur + direction)
	e.offset = target
	return &Plan{PreJump: pre, Target: target}
}

// ObserveScroll ingests a raw scroll offset from a user-initiated drag. It
// returns the derived logical index and, when the offset has drifted past a
// boundary threshold, the teleport the caller must apply. While a teleport is
// in flight further observations report the current index and never issue a
// second teleport; the caller ends the sequence with EndTeleport once the
// jump (and its deferred snap restore) has been applied.
func (e *Engine) ObserveScroll(offset float64) (int, *Teleport) {
	if !e.Ready() {
		return 0, nil
	}
	if e.teleporting {
		return e.Index(), nil
	}
	e.offset = offset
	idx := e.logicalIndex(e.nearestSlot(offset))

	span := float64(e.n) * e.snapSize
	// One clone-slot of slack past the clone region on either side.
	low := e.slotOffset(1)
	high := e.slotOffset(e.slotCount() - 2)
	switch {
	case offset < low-epsilon:
		e.teleporting = true
		return idx, &Teleport{Delta: span, Target: offset + span}
	case offset > high+epsilon:
		e.teleporting = true
		return idx, &Teleport{Delta: -span, Target: offset - span}
	}
	return idx, nil
}

// EndTeleport commits the teleported offset and re-enables boundary checks.
// Calling it when no teleport is in flight is harmless.
func (e *Engine) EndTeleport(offset float64) {
	e.offset = offset
	e.teleporting = false
}

// Teleporting reports whether a jump is currently in flight.
func (e *Engine) Teleporting() bool { return e.teleporting }
