package scene

import (
	"image"

	"orbitals/config"
)

// Material holds the shading parameters the renderer understands.
type Material struct {
	Color        [3]float32
	Roughness    float32
	Metalness    float32
	Reflectivity float32
	Clearcoat    float32
	VertexColors bool
	// Texture is set on the frame thread once an asynchronous load
	// finishes.
	Texture *image.RGBA
}

func newMaterial(cfg config.Material) (Material, error) {
	c, err := config.ParseColor(cfg.Color)
	if err != nil {
		return Material{}, err
	}
	return Material{
		Color:        rgb(c),
		Roughness:    cfg.Roughness,
		Metalness:    cfg.Metalness,
		Reflectivity: cfg.Reflectivity,
		Clearcoat:    cfg.Clearcoat,
		VertexColors: cfg.VertexColors == config.VertexColorsRandom || cfg.VertexColors == config.VertexColorsGradient,
	}, nil
}

// paint fills the mesh's colour attribute according to the material's
// vertex colour mode.
func paint(m *Mesh, cfg config.Material, seed int64) error {
	switch cfg.VertexColors {
	case config.VertexColorsRandom:
		m.Colors = RandomColors(m.VertexCount(), newRand(seed))
	case config.VertexColorsGradient:
		from, err := config.ParseColor(cfg.Color)
		if err != nil {
			return err
		}
		to, err := config.ParseColor(cfg.GradientTo)
		if err != nil {
			return err
		}
		m.Colors = GradientColors(m, from, to)
	}
	return nil
}
