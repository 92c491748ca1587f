package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"orbitals/config"
)

// Camera is a perspective camera looking down -z from Position.
type Camera struct {
	Position mgl32.Vec3
	Fov      float32
	Near     float32
	Far      float32
	Aspect   float32
}

func NewCamera(cfg config.Camera, aspect float32) *Camera {
	return &Camera{
		Position: mgl32.Vec3(cfg.Position),
		Fov:      cfg.Fov,
		Near:     cfg.Near,
		Far:      cfg.Far,
		Aspect:   aspect,
	}
}

// Resize updates the aspect ratio. A degenerate size leaves it unchanged.
func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Sub(mgl32.Vec3{0, 0, 1}), mgl32.Vec3{0, 1, 0})
}

func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}
