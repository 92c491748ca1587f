package scene

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// RandomColors gives vertex i of n the hue (i/n)*rand at half saturation
// and lightness, which makes a noisy sweep that favours the low hues.
func RandomColors(n int, rng *rand.Rand) []float32 {
	colors := make([]float32, 0, n*3)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n) * rng.Float64()
		c := colorful.Hsl(hue*360, 0.5, 0.5)
		colors = append(colors, float32(c.R), float32(c.G), float32(c.B))
	}
	return colors
}

// GradientColors colours a ring by the angle of each vertex around the z
// axis. The blend runs from -> to -> from so the seam at angle pi is
// invisible.
func GradientColors(m *Mesh, from, to colorful.Color) []float32 {
	n := m.VertexCount()
	colors := make([]float32, 0, n*3)
	for i := 0; i < n; i++ {
		v := m.Vertex(i)
		t := (math.Atan2(float64(v.Y()), float64(v.X())) + math.Pi) / (2 * math.Pi)
		c := from.BlendLab(to, 1-math.Abs(2*t-1)).Clamped()
		colors = append(colors, float32(c.R), float32(c.G), float32(c.B))
	}
	return colors
}

func rgb(c colorful.Color) [3]float32 {
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}
