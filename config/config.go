// Package config holds every tunable of the scene and loads overrides from
// a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/unixpickle/essentials"

	"orbitals/animator"
)

// VertexColors selects how a mesh's per-vertex colour attribute is filled
// and whether the material uses it. Empty means none.
type VertexColors string

const (
	VertexColorsNone     VertexColors = "none"
	VertexColorsRandom   VertexColors = "random"
	VertexColorsGradient VertexColors = "gradient"
)

type Window struct {
	Title       string `toml:"title"`
	Width       int    `toml:"width"`
	AspectRatio string `toml:"aspect_ratio"`
	Windowed    bool   `toml:"windowed"`
}

type Camera struct {
	Fov      float32    `toml:"fov"`
	Near     float32    `toml:"near"`
	Far      float32    `toml:"far"`
	Position [3]float32 `toml:"position"`
}

type Scene struct {
	Background    string     `toml:"background"`
	GroupPosition [3]float32 `toml:"group_position"`
	// Seed feeds the random vertex colours.
	Seed int64 `toml:"seed"`
}

type Material struct {
	Color        string       `toml:"color"`
	Roughness    float32      `toml:"roughness"`
	Metalness    float32      `toml:"metalness"`
	Reflectivity float32      `toml:"reflectivity"`
	Clearcoat    float32      `toml:"clearcoat"`
	VertexColors VertexColors `toml:"vertex_colors"`
	// GradientTo is the far end of a gradient ring; Color is the near end.
	GradientTo string `toml:"gradient_to"`
}

type Ring struct {
	Radius          float64  `toml:"radius"`
	Tube            float64  `toml:"tube"`
	RadialSegments  int      `toml:"radial_segments"`
	TubularSegments int      `toml:"tubular_segments"`
	Material        Material `toml:"material"`
}

type Sphere struct {
	Size float64 `toml:"size"`
	// Detail is the icosphere frequency: 20*Detail^2 triangles.
	Detail   int                `toml:"detail"`
	Orbit    animator.OrbitBody `toml:"orbit"`
	Material Material           `toml:"material"`
}

type Model struct {
	Path     string     `toml:"path"`
	Scale    float32    `toml:"scale"`
	Position [3]float32 `toml:"position"`
	Material Material   `toml:"material"`
}

type Plane struct {
	Enabled  bool       `toml:"enabled"`
	Width    float32    `toml:"width"`
	Height   float32    `toml:"height"`
	Position [3]float32 `toml:"position"`
	Texture  string     `toml:"texture"`
	// MaxTextureSize bounds the longer texture side; larger images are
	// downscaled on load.
	MaxTextureSize int      `toml:"max_texture_size"`
	Material       Material `toml:"material"`
}

// File is the whole configuration. Listing rings or spheres in a file
// replaces the default set entirely.
type File struct {
	Window     Window                    `toml:"window"`
	Camera     Camera                    `toml:"camera"`
	Scene      Scene                     `toml:"scene"`
	Pointer    animator.PointerConfig    `toml:"pointer"`
	Controller animator.ControllerConfig `toml:"controller"`
	Orbit      animator.OrbitConfig      `toml:"orbit"`
	Spin       animator.SpinConfig       `toml:"spin"`
	Rings      []Ring                    `toml:"rings"`
	Spheres    []Sphere                  `toml:"spheres"`
	Model      Model                     `toml:"model"`
	Plane      Plane                     `toml:"plane"`
}

func ringMaterial(color string) Material {
	return Material{
		Color:        color,
		Roughness:    1,
		Metalness:    1,
		Reflectivity: 0,
		Clearcoat:    0.5,
	}
}

func sphereMaterial(color string) Material {
	return Material{
		Color:        color,
		Roughness:    1,
		Metalness:    1,
		Reflectivity: 0.5,
		Clearcoat:    1,
	}
}

// Default reproduces the original scene.
func Default() File {
	anim := animator.DefaultConfig()

	gradient := ringMaterial("#77c8db")
	gradient.VertexColors = VertexColorsGradient
	gradient.GradientTo = "#9853a2"

	sphereColors := []string{"#9853a2", "#1564cb", "#00ffa3"}
	spheres := make([]Sphere, len(anim.Orbit.Bodies))
	for i, b := range anim.Orbit.Bodies {
		spheres[i] = Sphere{
			Size:     0.1,
			Detail:   6,
			Orbit:    b,
			Material: sphereMaterial(sphereColors[i]),
		}
	}
	orbit := anim.Orbit
	orbit.Bodies = nil

	return File{
		Window: Window{
			Title:       "orbitals",
			Width:       1280,
			AspectRatio: "16:9",
			Windowed:    true,
		},
		Camera: Camera{
			Fov:      75,
			Near:     0.1,
			Far:      1000,
			Position: [3]float32{0, 0, 4.5},
		},
		Scene: Scene{
			Background:    "#444444",
			GroupPosition: [3]float32{0, 1, 0},
			Seed:          1,
		},
		Pointer:    anim.Pointer,
		Controller: anim.Controller,
		Orbit:      orbit,
		Spin:       anim.Spin,
		Rings: []Ring{
			{Radius: 3.5, Tube: 0.02, RadialSegments: 16, TubularSegments: 400, Material: ringMaterial("#4dffbe")},
			{Radius: 3.2, Tube: 0.02, RadialSegments: 16, TubularSegments: 400, Material: gradient},
		},
		Spheres: spheres,
		Model: Model{
			Path:     "logo.stl",
			Scale:    0.03,
			Position: [3]float32{0, -1, 0},
			Material: Material{
				Color:        "#d8d8d8",
				Roughness:    0.4,
				Metalness:    0.8,
				Reflectivity: 0.5,
			},
		},
		Plane: Plane{
			Enabled:        false,
			Width:          16,
			Height:         9,
			Position:       [3]float32{0, 0, -3},
			MaxTextureSize: 2048,
			Material: Material{
				Color:     "#ffffff",
				Roughness: 1,
			},
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (File, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	rings, spheres := cfg.Rings, cfg.Spheres
	cfg.Rings, cfg.Spheres = nil, nil

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return File{}, essentials.AddCtx("decode "+path, err)
	}
	if cfg.Rings == nil {
		cfg.Rings = rings
	}
	if cfg.Spheres == nil {
		cfg.Spheres = spheres
	}

	if err := cfg.Validate(); err != nil {
		return File{}, essentials.AddCtx(path, err)
	}
	return cfg, nil
}

// Animator assembles the animator configuration; orbit bodies come from
// the spheres.
func (c File) Animator() animator.Config {
	orbit := c.Orbit
	orbit.Bodies = make([]animator.OrbitBody, len(c.Spheres))
	for i, s := range c.Spheres {
		orbit.Bodies[i] = s.Orbit
	}
	return animator.Config{
		Pointer:    c.Pointer,
		Controller: c.Controller,
		Orbit:      orbit,
		Spin:       c.Spin,
	}
}

// AspectRatio is the parsed Window.AspectRatio.
func (c File) AspectRatio() float64 {
	ar, err := ParseAspectRatio(c.Window.AspectRatio)
	if err != nil {
		return 16.0 / 9.0
	}
	return ar
}

func (c File) Validate() error {
	if c.Window.Width <= 0 {
		return fmt.Errorf("error: Render width must be greater than 0")
	}
	if _, err := ParseAspectRatio(c.Window.AspectRatio); err != nil {
		return fmt.Errorf("error: Aspect Ratio could not be parsed:\n\t%w", err)
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180), got %v", c.Camera.Fov)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip range [%v, %v] is invalid", c.Camera.Near, c.Camera.Far)
	}
	if _, err := ParseColor(c.Scene.Background); err != nil {
		return fmt.Errorf("scene background: %w", err)
	}
	if err := c.Animator().Validate(); err != nil {
		return err
	}
	for i, r := range c.Rings {
		if r.Radius <= 0 || r.Tube <= 0 {
			return fmt.Errorf("ring %d: radius and tube must be positive", i)
		}
		if r.Tube > r.Radius {
			return fmt.Errorf("ring %d: tube cannot exceed radius", i)
		}
		if r.RadialSegments < 3 || r.TubularSegments < 3 {
			return fmt.Errorf("ring %d: needs at least 3 radial and tubular segments", i)
		}
		if err := r.Material.validate(); err != nil {
			return fmt.Errorf("ring %d: %w", i, err)
		}
	}
	for i, s := range c.Spheres {
		if s.Size <= 0 {
			return fmt.Errorf("sphere %d: size must be positive", i)
		}
		if s.Detail < 1 {
			return fmt.Errorf("sphere %d: detail must be at least 1", i)
		}
		if err := s.Material.validate(); err != nil {
			return fmt.Errorf("sphere %d: %w", i, err)
		}
	}
	if err := c.Model.Material.validate(); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	if c.Model.Path != "" && c.Model.Scale <= 0 {
		return fmt.Errorf("model: scale must be positive")
	}
	if c.Plane.Enabled {
		if c.Plane.Width <= 0 || c.Plane.Height <= 0 {
			return fmt.Errorf("plane: width and height must be positive")
		}
		if c.Plane.MaxTextureSize <= 0 {
			return fmt.Errorf("plane: max texture size must be positive")
		}
		if err := c.Plane.Material.validate(); err != nil {
			return fmt.Errorf("plane: %w", err)
		}
	}
	return nil
}

func (m Material) validate() error {
	if _, err := ParseColor(m.Color); err != nil {
		return err
	}
	switch m.VertexColors {
	case "", VertexColorsNone, VertexColorsRandom:
	case VertexColorsGradient:
		if _, err := ParseColor(m.GradientTo); err != nil {
			return fmt.Errorf("gradient: %w", err)
		}
	default:
		return fmt.Errorf("unknown vertex colors mode %q", string(m.VertexColors))
	}
	return nil
}
