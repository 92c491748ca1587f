// Package scene builds the node graph for the orbit scene and applies
// animator frames to it. It knows nothing about GL.
package scene

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"orbitals/animator"
	"orbitals/config"
)

// Scene is the graph the renderer draws and the handles the frame loop
// updates.
type Scene struct {
	Root       *Node
	Group      *Node
	Bodies     []*Node
	Plane      *Node
	Camera     *Camera
	Background [3]float32

	// Model and Texture are nil when not configured.
	Model   *animator.Future[*Node]
	Texture *animator.Future[*image.RGBA]

	modelAttached   bool
	textureAttached bool
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Build creates the scene described by cfg and starts its asset loads.
func Build(cfg config.File, aspect float32) (*Scene, error) {
	bg, err := config.ParseColor(cfg.Scene.Background)
	if err != nil {
		return nil, fmt.Errorf("scene background: %w", err)
	}
	s := &Scene{
		Root:       NewGroup("root"),
		Group:      NewGroup("group"),
		Camera:     NewCamera(cfg.Camera, aspect),
		Background: rgb(bg),
	}
	seed := cfg.Scene.Seed

	for i, r := range cfg.Rings {
		m := Torus(r.Radius, r.Tube, r.RadialSegments, r.TubularSegments)
		node, err := newMeshNode(fmt.Sprintf("ring%d", i+1), m, r.Material, seed+int64(i))
		if err != nil {
			return nil, fmt.Errorf("ring %d: %w", i+1, err)
		}
		s.Group.Add(node)
	}
	for i, sp := range cfg.Spheres {
		m := Sphere(sp.Size, sp.Detail)
		node, err := newMeshNode(fmt.Sprintf("sphere%d", i+1), m, sp.Material, seed+int64(100+i))
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i+1, err)
		}
		node.Position = mgl32.Vec3{0, 0, float32(sp.Orbit.Depth)}
		s.Bodies = append(s.Bodies, node)
		s.Group.Add(node)
	}
	s.Group.Position = mgl32.Vec3(cfg.Scene.GroupPosition)
	s.Group.SetRotation(animator.RotationTarget{
		PitchDeg: cfg.Controller.BasePitch,
		YawDeg:   cfg.Controller.BaseYaw,
	}.Radians())
	s.Root.Add(s.Group)

	if cfg.Plane.Enabled {
		node, err := newMeshNode("plane", Plane(cfg.Plane.Width, cfg.Plane.Height), cfg.Plane.Material, seed)
		if err != nil {
			return nil, fmt.Errorf("plane: %w", err)
		}
		node.Position = mgl32.Vec3(cfg.Plane.Position)
		s.Plane = node
		s.Root.Add(node)
		if cfg.Plane.Texture != "" {
			s.Texture = LoadTexture(cfg.Plane.Texture, cfg.Plane.MaxTextureSize)
		}
	}

	if cfg.Model.Path != "" {
		s.Model = LoadModel(cfg.Model, seed)
	}
	return s, nil
}

func newMeshNode(name string, m *Mesh, cfg config.Material, seed int64) (*Node, error) {
	if err := paint(m, cfg, seed); err != nil {
		return nil, err
	}
	mat, err := newMaterial(cfg)
	if err != nil {
		return nil, err
	}
	return NewNode(name, m, mat), nil
}

// ModelSpin returns the per-frame model spin, or nil when the scene has
// no model.
func (s *Scene) ModelSpin(cfg animator.SpinConfig) animator.Stepper {
	if s.Model == nil {
		return nil
	}
	return animator.NewModelSpin(cfg, s.Model)
}

// Apply writes an animator frame into the graph and attaches assets whose
// loads have finished.
func (s *Scene) Apply(f animator.Frame) {
	s.Group.SetRotation(f.Rotation.Radians())
	for i, p := range f.Orbits {
		if i >= len(s.Bodies) {
			break
		}
		s.Bodies[i].Position = p
	}

	if s.Model != nil && !s.modelAttached {
		if node, ok := s.Model.Poll(); ok {
			s.Root.Add(node)
			s.modelAttached = true
		}
	}
	if s.Texture != nil && !s.textureAttached {
		if img, ok := s.Texture.Poll(); ok {
			s.Plane.Material.Texture = img
			s.textureAttached = true
		}
	}
}
