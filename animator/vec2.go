package animator

import (
	"github.com/chewxy/math32"
)

// Vec2 is a pointer offset or viewport size in pixels.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Sub(u Vec2) Vec2 {
	return Vec2{v.X - u.X, v.Y - u.Y}
}

func (v Vec2) Scale(t float32) Vec2 {
	return Vec2{v.X * t, v.Y * t}
}

// Div divides component-wise. The caller guarantees u has no zero component.
func (v Vec2) Div(u Vec2) Vec2 {
	return Vec2{v.X / u.X, v.Y / u.Y}
}

// Finite reports whether both components are neither NaN nor infinite.
func (v Vec2) Finite() bool {
	return finite(v.X) && finite(v.Y)
}

// Positive reports whether both components are strictly greater than zero,
// which is what a usable viewport size must satisfy.
func (v Vec2) Positive() bool {
	return v.X > 0 && v.Y > 0
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
