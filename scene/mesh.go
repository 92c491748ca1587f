package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/unixpickle/model3d/model3d"
)

// Mesh is an indexed triangle mesh laid out for upload: three floats per
// position, normal and colour, two per texture coordinate.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Colors    []float32
	UVs       []float32
	Indices   []uint32
}

// FromModel3D welds identical vertices and gives each one the
// area-weighted average normal of the triangles around it.
func FromModel3D(m *model3d.Mesh) *Mesh {
	index := map[model3d.Coord3D]uint32{}
	var coords []model3d.Coord3D
	var normals []model3d.Coord3D
	res := &Mesh{}

	for _, t := range m.TriangleSlice() {
		n := t.Normal().Scale(t.Area())
		for _, c := range t {
			i, ok := index[c]
			if !ok {
				i = uint32(len(coords))
				index[c] = i
				coords = append(coords, c)
				normals = append(normals, model3d.Coord3D{})
			}
			normals[i] = normals[i].Add(n)
			res.Indices = append(res.Indices, i)
		}
	}

	res.Positions = make([]float32, 0, len(coords)*3)
	res.Normals = make([]float32, 0, len(coords)*3)
	for i, c := range coords {
		n := normals[i]
		if norm := n.Norm(); norm > 0 {
			n = n.Scale(1 / norm)
		}
		res.Positions = append(res.Positions, float32(c.X), float32(c.Y), float32(c.Z))
		res.Normals = append(res.Normals, float32(n.X), float32(n.Y), float32(n.Z))
	}
	return res
}

// Torus builds a ring of the given radius around the z axis, lying in the
// xy plane, with a tube of radius tube.
func Torus(radius, tube float64, radialSegments, tubularSegments int) *Mesh {
	m := model3d.NewMeshTorus(model3d.Coord3D{}, model3d.XYZ(0, 0, 1), tube, radius,
		radialSegments, tubularSegments)
	return FromModel3D(m)
}

// Sphere builds a geodesic sphere with 20*detail^2 faces.
func Sphere(radius float64, detail int) *Mesh {
	return FromModel3D(model3d.NewMeshIcosphere(model3d.Coord3D{}, radius, detail))
}

// Plane builds a width x height quad in the xy plane facing +z, with
// texture coordinates running from (0, 0) at the bottom left.
func Plane(width, height float32) *Mesh {
	w, h := width/2, height/2
	return &Mesh{
		Positions: []float32{-w, -h, 0, w, -h, 0, w, h, 0, -w, h, 0},
		Normals:   []float32{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1},
		UVs:       []float32{0, 0, 1, 0, 1, 1, 0, 1},
		Indices:   []uint32{0, 1, 2, 0, 2, 3},
	}
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

func (m *Mesh) Vertex(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2]}
}

func (m *Mesh) Normal(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2]}
}
