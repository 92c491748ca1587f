package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"orbitals/animator"
)

// Node is a scene graph entry. A node without a mesh is a group.
type Node struct {
	Name     string
	Mesh     *Mesh
	Material Material
	Position mgl32.Vec3
	// Rotation holds Euler angles in radians, applied x then y then z.
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
	Children []*Node
}

func NewNode(name string, mesh *Mesh, mat Material) *Node {
	return &Node{
		Name:     name,
		Mesh:     mesh,
		Material: mat,
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func NewGroup(name string) *Node {
	return NewNode(name, nil, Material{})
}

func (n *Node) Add(children ...*Node) {
	n.Children = append(n.Children, children...)
}

func (n *Node) SetRotation(r mgl32.Vec3) {
	n.Rotation = r
}

// Spin implements animator.Spinner.
func (n *Node) Spin(axis animator.Axis, rad float32) {
	n.Rotation[axis] += rad
}

// Local is the node's transform relative to its parent.
func (n *Node) Local() mgl32.Mat4 {
	return mgl32.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z()).
		Mul4(mgl32.HomogRotate3DX(n.Rotation.X())).
		Mul4(mgl32.HomogRotate3DY(n.Rotation.Y())).
		Mul4(mgl32.HomogRotate3DZ(n.Rotation.Z())).
		Mul4(mgl32.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z()))
}

// Walk visits n and its descendants depth first with their world
// transforms.
func (n *Node) Walk(parent mgl32.Mat4, fn func(*Node, mgl32.Mat4)) {
	world := parent.Mul4(n.Local())
	fn(n, world)
	for _, c := range n.Children {
		c.Walk(world, fn)
	}
}

// Find returns the first node named name, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}
