package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbitals/animator"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	anim := cfg.Animator()
	assert.Equal(t, animator.DefaultConfig(), anim)
	assert.Len(t, cfg.Rings, 2)
	assert.Len(t, cfg.Spheres, 3)
	assert.Equal(t, VertexColorsGradient, cfg.Rings[1].Material.VertexColors)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 640
aspect_ratio = "4:3"

[pointer]
mode = "relative"
quiescence_ms = 250

[controller]
policy = "exponential"
pitch_gain = 0.05
yaw_gain = 0.00001

[orbit]
phase_units = "degrees"

[spin]
axis = "z"
step = 0.01

[[spheres]]
size = 0.2
detail = 2
orbit = { radius = 2.5, phase = 45, depth = 0.2 }
material = { color = "0xff0000", vertex_colors = "random" }
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.InDelta(t, 4.0/3.0, cfg.AspectRatio(), 1e-9)
	assert.Equal(t, animator.PointerRelative, cfg.Pointer.Mode)
	assert.Equal(t, 250, cfg.Pointer.QuiescenceMs)
	assert.True(t, cfg.Pointer.DeadZone, "unset keys keep their defaults")
	assert.Equal(t, animator.ExponentialFollow, cfg.Controller.Policy)
	assert.Equal(t, float32(0.00001), cfg.Controller.YawGain)
	assert.Equal(t, float32(-60), cfg.Controller.BasePitch)
	assert.Equal(t, animator.PhaseDegrees, cfg.Orbit.PhaseUnits)
	assert.Equal(t, animator.AxisZ, cfg.Spin.Axis)

	require.Len(t, cfg.Spheres, 1)
	assert.Equal(t, animator.OrbitBody{Radius: 2.5, Phase: 45, Depth: 0.2}, cfg.Spheres[0].Orbit)
	assert.Len(t, cfg.Rings, 2, "rings keep the defaults when the file lists none")

	anim := cfg.Animator()
	require.Len(t, anim.Orbit.Bodies, 1)
	assert.Equal(t, 2.5, anim.Orbit.Bodies[0].Radius)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[controller]
polcy = "snap"
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	bodies := []string{
		"[controller]\npolicy = \"wobble\"\n",
		"[controller]\nscale = 0.0\n",
		"[pointer]\nmode = \"diagonal\"\n",
		"[window]\naspect_ratio = \"16-9\"\n",
		"[camera]\nnear = 10.0\nfar = 1.0\n",
		"[[rings]]\nradius = 1.0\ntube = 0.1\nradial_segments = 2\ntubular_segments = 10\nmaterial = { color = \"#fff\" }\n",
		"[[rings]]\nradius = 0.5\ntube = 1.0\nradial_segments = 16\ntubular_segments = 100\nmaterial = { color = \"#fff\" }\n",
		"[[spheres]]\nsize = 0.1\ndetail = 1\nmaterial = { color = \"chartreuse\" }\n",
		"[plane]\nenabled = true\nwidth = 0.0\n",
	}
	for _, body := range bodies {
		_, err := Load(writeConfig(t, body))
		assert.Error(t, err, body)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestParseAspectRatio(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"16:9", 16.0 / 9.0, false},
		{"1:1", 1, false},
		{"2.35:1", 2.35, false},
		{"16", 0, true},
		{"a:9", 0, true},
		{"16:b", 0, true},
		{"16:0", 0, true},
		{"-4:3", 0, true},
		{"1:2:3", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseAspectRatio(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, tt.in)
	}
}

func TestParseColor(t *testing.T) {
	for _, s := range []string{"#4dffbe", "4dffbe", "0x4dffbe", "0x4DFFBE"} {
		c, err := ParseColor(s)
		require.NoError(t, err, s)
		assert.Equal(t, "#4dffbe", c.Hex())
	}
	_, err := ParseColor("not-a-color")
	assert.Error(t, err)
}

func TestExampleFileMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "scene.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
