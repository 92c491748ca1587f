package animator

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// RotationTarget is the orientation of the rotating group, in degrees.
type RotationTarget struct {
	PitchDeg float32
	YawDeg   float32
}

// Radians converts the target to the (x, y, z) Euler angles applied to the
// group node.
func (r RotationTarget) Radians() mgl32.Vec3 {
	return mgl32.Vec3{mgl32.DegToRad(r.PitchDeg), mgl32.DegToRad(r.YawDeg), 0}
}

type ControllerConfig struct {
	Policy    Policy  `toml:"policy"`
	BasePitch float32 `toml:"base_pitch"`
	BaseYaw   float32 `toml:"base_yaw"`
	// Scale divides the pointer offset to obtain degrees.
	Scale     float32 `toml:"scale"`
	EaseStep  float32 `toml:"ease_step"`
	PitchGain float32 `toml:"pitch_gain"`
	YawGain   float32 `toml:"yaw_gain"`
	// Normalize divides the offset by half the viewport before scaling.
	Normalize bool `toml:"normalize"`
}

func (c ControllerConfig) base() RotationTarget {
	return RotationTarget{PitchDeg: c.BasePitch, YawDeg: c.BaseYaw}
}

// Controller moves a RotationTarget towards the orientation derived from the
// latest pointer sample. It starts at the base orientation.
type Controller struct {
	cfg     ControllerConfig
	current RotationTarget
	weight  float32
}

func NewController(cfg ControllerConfig) *Controller {
	return &Controller{cfg: cfg, current: cfg.base()}
}

func (c *Controller) Policy() Policy {
	return c.cfg.Policy
}

func (c *Controller) Current() RotationTarget {
	return c.current
}

// Weight is the ease-in ramp, always in [0, 1].
func (c *Controller) Weight() float32 {
	return c.weight
}

// Reset returns to the base orientation and restarts the ease-in ramp.
func (c *Controller) Reset() {
	c.current = c.cfg.base()
	c.weight = 0
}

// Update advances the controller by one frame and reports whether the
// rotation target was written. A degenerate viewport skips the frame.
func (c *Controller) Update(s PointerSample) bool {
	if !s.Viewport.Positive() {
		return false
	}
	off := s.Offset
	if c.cfg.Normalize {
		off = off.Div(s.Viewport.Scale(0.5))
	}
	if !off.Finite() {
		return false
	}

	var next RotationTarget
	switch c.cfg.Policy {
	case Snap:
		next = c.goal(off, 1)
	case WeightedEaseIn:
		if !s.Moving || c.weight >= 1 {
			return false
		}
		weight := math32.Min(c.weight+c.cfg.EaseStep, 1)
		next = c.goal(off, weight)
		if !next.finite() {
			return false
		}
		c.weight = weight
	case ExponentialFollow:
		goal := c.goal(off, 1)
		next = RotationTarget{
			PitchDeg: c.current.PitchDeg + (goal.PitchDeg-c.current.PitchDeg)*c.cfg.PitchGain,
			YawDeg:   c.current.YawDeg + (goal.YawDeg-c.current.YawDeg)*c.cfg.YawGain,
		}
	default:
		return false
	}
	if !next.finite() {
		return false
	}
	c.current = next
	return true
}

func (c *Controller) goal(off Vec2, weight float32) RotationTarget {
	return RotationTarget{
		PitchDeg: c.cfg.BasePitch + off.X*weight/c.cfg.Scale,
		YawDeg:   c.cfg.BaseYaw + off.Y*weight/c.cfg.Scale,
	}
}

func (r RotationTarget) finite() bool {
	return finite(r.PitchDeg) && finite(r.YawDeg)
}
