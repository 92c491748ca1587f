package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"orbitals/animator"
)

func transformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, m)
}

func TestNodeLocalTransform(t *testing.T) {
	n := NewGroup("n")
	n.Position = mgl32.Vec3{1, 2, 3}
	n.Scale = mgl32.Vec3{2, 2, 2}

	got := transformPoint(n.Local(), mgl32.Vec3{1, 0, 0})
	assert.InDeltaSlice(t, []float32{3, 2, 3}, got[:], 1e-5)

	n.SetRotation(mgl32.Vec3{0, 0, math.Pi / 2})
	got = transformPoint(n.Local(), mgl32.Vec3{1, 0, 0})
	assert.InDeltaSlice(t, []float32{1, 4, 3}, got[:], 1e-5)
}

func TestNodeSpin(t *testing.T) {
	n := NewGroup("model")
	var s animator.Spinner = n
	for i := 0; i < 10; i++ {
		s.Spin(animator.AxisY, 0.02)
	}
	assert.InDelta(t, 0.2, n.Rotation.Y(), 1e-6)
	assert.Equal(t, float32(0), n.Rotation.X())
}

func TestNodeWalkComposesParents(t *testing.T) {
	root := NewGroup("root")
	group := NewGroup("group")
	group.Position = mgl32.Vec3{0, 1, 0}
	leaf := NewGroup("leaf")
	leaf.Position = mgl32.Vec3{3, 0, 0}
	group.Add(leaf)
	root.Add(group)

	var names []string
	var leafWorld mgl32.Mat4
	root.Walk(mgl32.Ident4(), func(n *Node, world mgl32.Mat4) {
		names = append(names, n.Name)
		if n == leaf {
			leafWorld = world
		}
	})
	assert.Equal(t, []string{"root", "group", "leaf"}, names)
	got := transformPoint(leafWorld, mgl32.Vec3{})
	assert.InDeltaSlice(t, []float32{3, 1, 0}, got[:], 1e-6)

	assert.Same(t, leaf, root.Find("leaf"))
	assert.Nil(t, root.Find("missing"))
}

func TestCamera(t *testing.T) {
	c := &Camera{Position: mgl32.Vec3{0, 0, 4.5}, Fov: 75, Near: 0.1, Far: 1000, Aspect: 16.0 / 9.0}

	c.Resize(0, 600)
	assert.InDelta(t, 16.0/9.0, c.Aspect, 1e-6)
	c.Resize(800, 600)
	assert.InDelta(t, 4.0/3.0, c.Aspect, 1e-6)

	// The origin is straight ahead of the camera.
	clip := c.ViewProjection().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, clip.X()/clip.W(), 1e-6)
	assert.InDelta(t, 0, clip.Y()/clip.W(), 1e-6)
	assert.Greater(t, clip.W(), float32(0))
}
