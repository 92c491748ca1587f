// Package animator drives the per-frame motion of the scene: a pointer
// tracker with a debounced moving flag, a damped rotation controller for
// the pointer-following group, orbiting bodies and a spinning model.
//
// Everything here is owned by the frame thread. The only value that
// crosses goroutines is a Future.
package animator

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

type Config struct {
	Pointer    PointerConfig    `toml:"pointer"`
	Controller ControllerConfig `toml:"controller"`
	Orbit      OrbitConfig      `toml:"orbit"`
	Spin       SpinConfig       `toml:"spin"`
}

func DefaultConfig() Config {
	return Config{
		Pointer: PointerConfig{
			Mode:         PointerAbsolute,
			QuiescenceMs: 100,
			DeadZone:     true,
		},
		Controller: ControllerConfig{
			Policy:    WeightedEaseIn,
			BasePitch: -60,
			BaseYaw:   20,
			Scale:     200,
			EaseStep:  0.05,
			PitchGain: 0.05,
			YawGain:   0.05,
		},
		Orbit: OrbitConfig{
			Speed:      0.0005,
			PhaseUnits: PhaseRaw,
			Bodies: []OrbitBody{
				{Radius: 3.21, Phase: 0, Depth: 0.11},
				{Radius: 3.21, Phase: 90, Depth: 0.11},
				{Radius: 3.51, Phase: 180, Depth: 0.11},
			},
		},
		Spin: SpinConfig{Axis: AxisY, Step: 0.02},
	}
}

func (c Config) Validate() error {
	if err := c.Pointer.Mode.Validate(); err != nil {
		return err
	}
	if c.Pointer.QuiescenceMs <= 0 {
		return fmt.Errorf("pointer quiescence must be positive, got %dms", c.Pointer.QuiescenceMs)
	}
	if _, err := c.Controller.Policy.MarshalText(); err != nil {
		return err
	}
	if c.Controller.Scale == 0 {
		return fmt.Errorf("controller scale cannot be zero")
	}
	if c.Controller.EaseStep <= 0 || c.Controller.EaseStep > 1 {
		return fmt.Errorf("controller ease step must be in (0, 1], got %v", c.Controller.EaseStep)
	}
	for name, k := range map[string]float32{"pitch": c.Controller.PitchGain, "yaw": c.Controller.YawGain} {
		if k < 0 || k > 1 {
			return fmt.Errorf("controller %s gain must be in [0, 1], got %v", name, k)
		}
	}
	if err := c.Orbit.PhaseUnits.Validate(); err != nil {
		return err
	}
	for i, b := range c.Orbit.Bodies {
		if b.Radius < 0 {
			return fmt.Errorf("orbit body %d has negative radius %v", i, b.Radius)
		}
	}
	if _, err := c.Spin.Axis.MarshalText(); err != nil {
		return err
	}
	return nil
}

// Stepper is a per-frame update that may be a no-op, such as a ModelSpin
// waiting for its model.
type Stepper interface {
	Update() bool
}

// Frame is the outcome of one animator step.
type Frame struct {
	Time     time.Time
	Rotation RotationTarget
	// Rotated is set when the controller wrote the rotation this frame.
	Rotated bool
	// Stopped is set on the frame the pointer went quiet.
	Stopped bool
	Orbits  []mgl32.Vec3
	Spun    bool
}

// Animator owns the pointer state, the rotation target and the per-frame
// updaters of one scene.
type Animator struct {
	cfg        Config
	clock      Clock
	pointer    *PointerTracker
	controller *Controller
	spin       Stepper
	orbits     []mgl32.Vec3
}

// New creates an animator. spin may be nil when the scene has no model.
func New(cfg Config, clock Clock, spin Stepper) *Animator {
	return &Animator{
		cfg:        cfg,
		clock:      clock,
		pointer:    NewPointerTracker(cfg.Pointer, clock),
		controller: NewController(cfg.Controller),
		spin:       spin,
	}
}

func (a *Animator) Pointer() *PointerTracker {
	return a.pointer
}

func (a *Animator) Controller() *Controller {
	return a.controller
}

func (a *Animator) OnPointerMove(x, y float64) {
	a.pointer.OnPointerMove(x, y)
}

func (a *Animator) OnResize(width, height int) {
	a.pointer.OnResize(width, height)
}

// Step advances every component by one frame. The returned Orbits slice is
// reused by the next call.
func (a *Animator) Step() Frame {
	now := a.clock.Now()
	f := Frame{Time: now}
	f.Stopped = a.pointer.Tick()

	a.orbits = a.cfg.Orbit.Positions(now, a.orbits)
	f.Orbits = a.orbits

	if a.spin != nil {
		f.Spun = a.spin.Update()
	}

	f.Rotated = a.controller.Update(a.pointer.Sample())
	f.Rotation = a.controller.Current()
	return f
}
