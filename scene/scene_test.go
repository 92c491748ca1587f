package scene

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbitals/animator"
	"orbitals/config"
)

func testConfig() config.File {
	cfg := config.Default()
	cfg.Model.Path = ""
	for i := range cfg.Rings {
		cfg.Rings[i].RadialSegments = 6
		cfg.Rings[i].TubularSegments = 48
	}
	for i := range cfg.Spheres {
		cfg.Spheres[i].Detail = 2
	}
	return cfg
}

func TestBuildDefaultScene(t *testing.T) {
	s, err := Build(testConfig(), 16.0/9.0)
	require.NoError(t, err)

	assert.Len(t, s.Group.Children, 5)
	assert.Len(t, s.Bodies, 3)
	assert.Nil(t, s.Model)
	assert.Nil(t, s.Plane)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, s.Group.Position)
	assert.InDelta(t, -math.Pi/3, s.Group.Rotation.X(), 1e-6)

	ring1, ring2 := s.Root.Find("ring1"), s.Root.Find("ring2")
	require.NotNil(t, ring1)
	require.NotNil(t, ring2)
	assert.Empty(t, ring1.Mesh.Colors)
	assert.False(t, ring1.Material.VertexColors)
	assert.Len(t, ring2.Mesh.Colors, len(ring2.Mesh.Positions))
	assert.True(t, ring2.Material.VertexColors)

	for _, b := range s.Bodies {
		assert.InDelta(t, 0.11, b.Position.Z(), 1e-6)
	}
}

func TestBuildRejectsBadColor(t *testing.T) {
	cfg := testConfig()
	cfg.Spheres[1].Material.Color = "purple-ish"
	_, err := Build(cfg, 1)
	assert.Error(t, err)
}

func TestApplyFrame(t *testing.T) {
	s, err := Build(testConfig(), 1)
	require.NoError(t, err)

	f := animator.Frame{
		Rotation: animator.RotationTarget{PitchDeg: -59.5, YawDeg: 20.25},
		Orbits:   []mgl32.Vec3{{1, 0, 0.11}, {0, 1, 0.11}, {-1, 0, 0.11}, {9, 9, 9}},
	}
	s.Apply(f)

	assert.Equal(t, f.Rotation.Radians(), s.Group.Rotation)
	for i, b := range s.Bodies {
		assert.Equal(t, f.Orbits[i], b.Position)
	}
}

func TestApplyAttachesModelOnce(t *testing.T) {
	s, err := Build(testConfig(), 1)
	require.NoError(t, err)
	s.Model = animator.NewFuture[*Node]()
	spin := s.ModelSpin(animator.SpinConfig{Axis: animator.AxisY, Step: 0.02})
	require.NotNil(t, spin)

	for i := 0; i < 5; i++ {
		s.Apply(animator.Frame{})
		assert.False(t, spin.Update())
	}
	assert.Len(t, s.Root.Children, 1)

	model := NewGroup("model")
	s.Model.Resolve(model)
	for i := 0; i < 5; i++ {
		s.Apply(animator.Frame{})
		assert.True(t, spin.Update())
	}
	assert.Len(t, s.Root.Children, 2)
	assert.Same(t, model, s.Root.Find("model"))
	assert.InDelta(t, 0.1, model.Rotation.Y(), 1e-6)
}

func TestModelSpinNilWithoutModel(t *testing.T) {
	s, err := Build(testConfig(), 1)
	require.NoError(t, err)
	assert.Nil(t, s.ModelSpin(animator.SpinConfig{}))
}

func TestBuildWithMissingModelKeepsRunning(t *testing.T) {
	cfg := testConfig()
	cfg.Model.Path = "does-not-exist.stl"
	s, err := Build(cfg, 1)
	require.NoError(t, err)
	require.NotNil(t, s.Model)

	deadline := time.Now().Add(5 * time.Second)
	for s.Model.Pending() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	assert.Error(t, s.Model.Err())

	clock := animator.NewManualClock(time.Unix(0, 0))
	a := animator.New(cfg.Animator(), clock, s.ModelSpin(cfg.Spin))
	for i := 0; i < 100; i++ {
		f := a.Step()
		assert.False(t, f.Spun)
		s.Apply(f)
		clock.Advance(16 * time.Millisecond)
	}
	assert.Len(t, s.Root.Children, 1)
}
