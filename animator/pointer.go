package animator

import (
	"fmt"
	"time"
)

// PointerMode selects how raw pointer coordinates become an offset.
type PointerMode string

const (
	// PointerAbsolute uses the raw client coordinates as the offset.
	PointerAbsolute PointerMode = "absolute"
	// PointerRelative measures the offset from the viewport centre.
	PointerRelative PointerMode = "relative"
)

func (m PointerMode) Validate() error {
	switch m {
	case PointerAbsolute, PointerRelative:
		return nil
	}
	return fmt.Errorf("unknown pointer mode %q", string(m))
}

type PointerConfig struct {
	Mode         PointerMode `toml:"mode"`
	QuiescenceMs int         `toml:"quiescence_ms"`
	DeadZone     bool        `toml:"dead_zone"`
}

func (c PointerConfig) Quiescence() time.Duration {
	return time.Duration(c.QuiescenceMs) * time.Millisecond
}

// PointerSample is what the controller reads each frame.
type PointerSample struct {
	Offset   Vec2
	Viewport Vec2
	Moving   bool
}

// PointerTracker turns pointer and resize events into a PointerSample.
// It is not safe for concurrent use; events and ticks must come from the
// frame thread.
type PointerTracker struct {
	cfg      PointerConfig
	clock    Clock
	timer    *Debouncer
	last     Vec2
	viewport Vec2
	moving   bool
}

func NewPointerTracker(cfg PointerConfig, clock Clock) *PointerTracker {
	return &PointerTracker{
		cfg:   cfg,
		clock: clock,
		timer: NewDebouncer(cfg.Quiescence()),
	}
}

// OnPointerMove records the pointer position, marks the pointer as moving
// and re-arms the quiescence timer.
func (p *PointerTracker) OnPointerMove(x, y float64) {
	p.last = Vec2{float32(x), float32(y)}
	p.moving = true
	p.timer.Arm(p.clock.Now())
}

// OnResize updates the viewport used for relative offsets and
// normalization. Non-positive sizes are stored as is; consumers treat them
// as a degenerate viewport.
func (p *PointerTracker) OnResize(width, height int) {
	p.viewport = Vec2{float32(width), float32(height)}
}

// Tick fires the quiescence timer if it is due and reports whether the
// pointer went from moving to stopped on this call.
func (p *PointerTracker) Tick() bool {
	if !p.timer.Poll(p.clock.Now()) {
		return false
	}
	p.moving = false
	return true
}

// QuiescenceDeadline is when the pointer will be considered stopped. ok is
// false when no stop is pending.
func (p *PointerTracker) QuiescenceDeadline() (deadline time.Time, ok bool) {
	if !p.timer.Pending() {
		return time.Time{}, false
	}
	return p.timer.Deadline(), true
}

func (p *PointerTracker) Moving() bool {
	return p.moving
}

// Offset is the current pointer offset with the dead-zone applied.
func (p *PointerTracker) Offset() Vec2 {
	off := p.last
	if p.cfg.Mode == PointerRelative {
		off = off.Sub(p.viewport.Scale(0.5))
	}
	if p.cfg.DeadZone {
		off = Vec2{deadZone(off.X), deadZone(off.Y)}
	}
	return off
}

func (p *PointerTracker) Sample() PointerSample {
	return PointerSample{
		Offset:   p.Offset(),
		Viewport: p.viewport,
		Moving:   p.moving,
	}
}

// deadZone zeroes a component of exactly one pixel in either direction.
func deadZone(v float32) float32 {
	if v == 1 || v == -1 {
		return 0
	}
	return v
}
