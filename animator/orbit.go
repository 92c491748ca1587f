package animator

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// PhaseUnits says how an orbit body's phase offset is added to the time
// phase, which is in radians.
type PhaseUnits string

const (
	// PhaseRaw adds the offset as is, so 90 means 90 radians.
	PhaseRaw PhaseUnits = "raw"
	// PhaseDegrees converts the offset from degrees first.
	PhaseDegrees PhaseUnits = "degrees"
)

func (u PhaseUnits) Validate() error {
	switch u {
	case PhaseRaw, PhaseDegrees:
		return nil
	}
	return fmt.Errorf("unknown phase units %q", string(u))
}

// OrbitBody moves on a circle of Radius in the plane z = Depth.
type OrbitBody struct {
	Radius float64 `toml:"radius"`
	Phase  float64 `toml:"phase"`
	Depth  float64 `toml:"depth"`
}

// At returns the in-plane position for the time phase t.
func (b OrbitBody) At(t float64, units PhaseUnits) (x, y float64) {
	phase := b.Phase
	if units == PhaseDegrees {
		phase = phase * math.Pi / 180
	}
	return b.Radius * math.Cos(t+phase), b.Radius * math.Sin(t+phase)
}

func (b OrbitBody) Position(t float64, units PhaseUnits) mgl32.Vec3 {
	x, y := b.At(t, units)
	return mgl32.Vec3{float32(x), float32(y), float32(b.Depth)}
}

type OrbitConfig struct {
	// Speed is the angular velocity in radians per millisecond.
	Speed      float64     `toml:"speed"`
	PhaseUnits PhaseUnits  `toml:"phase_units"`
	Bodies     []OrbitBody `toml:"-"`
}

// OrbitPhase is the global time phase: Speed times milliseconds since the
// Unix epoch. The same instant always gives the same phase.
func (c OrbitConfig) OrbitPhase(now time.Time) float64 {
	return c.Speed * float64(now.UnixMilli())
}

// Positions computes every body's position at now. Nothing is integrated,
// so there is no drift between frames.
func (c OrbitConfig) Positions(now time.Time, dst []mgl32.Vec3) []mgl32.Vec3 {
	t := c.OrbitPhase(now)
	dst = dst[:0]
	for _, b := range c.Bodies {
		dst = append(dst, b.Position(t, c.PhaseUnits))
	}
	return dst
}
