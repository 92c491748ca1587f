package scene

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/model3d/model3d"

	"orbitals/animator"
	"orbitals/config"
)

func waitFor[T any](t *testing.T, f *animator.Future[T]) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for f.Pending() {
		if time.Now().After(deadline) {
			t.Fatal("load did not finish")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestLoadModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.stl")
	box := model3d.NewMeshRect(model3d.XYZ(2, 2, 2), model3d.XYZ(4, 6, 8))
	require.NoError(t, box.SaveGroupedSTL(path))

	cfg := config.Default().Model
	cfg.Path = path
	f := LoadModel(cfg, 1)
	waitFor(t, f)

	node, ok := f.Poll()
	require.True(t, ok)
	assert.Equal(t, "model", node.Name)
	assert.Equal(t, 8, node.Mesh.VertexCount())
	assert.InDelta(t, 0.03, node.Scale.X(), 1e-7)
	assert.InDelta(t, -1, node.Position.Y(), 1e-7)

	// The mesh is centred on its bounding box.
	var sum [3]float32
	for i := 0; i < node.Mesh.VertexCount(); i++ {
		v := node.Mesh.Vertex(i)
		for j := range sum {
			sum[j] += v[j]
		}
	}
	assert.InDeltaSlice(t, []float32{0, 0, 0}, sum[:], 1e-5)
}

func TestLoadModelFailure(t *testing.T) {
	cfg := config.Default().Model
	cfg.Path = filepath.Join(t.TempDir(), "missing.stl")
	f := LoadModel(cfg, 1)
	waitFor(t, f)

	_, ok := f.Poll()
	assert.False(t, ok)
	assert.Error(t, f.Err())
}

func TestLoadModelWithoutTriangles(t *testing.T) {
	// An 80-byte header followed by a zero triangle count.
	path := filepath.Join(t.TempDir(), "empty.stl")
	require.NoError(t, os.WriteFile(path, make([]byte, 84), 0644))

	cfg := config.Default().Model
	cfg.Path = path
	f := LoadModel(cfg, 1)
	waitFor(t, f)

	_, ok := f.Poll()
	assert.False(t, ok)
	assert.ErrorContains(t, f.Err(), "no triangles")
}

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(y * 255 / (h - 1)), 0, 0, 255})
		}
	}
	path := filepath.Join(t.TempDir(), "tex.png")
	out, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(out, img))
	require.NoError(t, out.Close())
	return path
}

func TestLoadTextureFlipsRows(t *testing.T) {
	f := LoadTexture(writePNG(t, 4, 2), 64)
	waitFor(t, f)
	img, ok := f.Poll()
	require.True(t, ok)

	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())
	assert.Equal(t, uint8(255), img.RGBAAt(0, 0).R, "first row is the bottom of the image")
	assert.Equal(t, uint8(0), img.RGBAAt(0, 1).R)
}

func TestLoadTextureDownscales(t *testing.T) {
	f := LoadTexture(writePNG(t, 64, 16), 32)
	waitFor(t, f)
	img, ok := f.Poll()
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 32, 8), img.Bounds())
}

func TestLoadTextureFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	f := LoadTexture(path, 32)
	waitFor(t, f)
	assert.Error(t, f.Err())
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		w, h, limit  int
		wantW, wantH int
	}{
		{100, 50, 200, 100, 50},
		{400, 100, 200, 200, 50},
		{100, 400, 200, 50, 200},
		{1000, 1, 10, 10, 1},
	}
	for _, tt := range tests {
		w, h := fitWithin(tt.w, tt.h, tt.limit)
		assert.Equal(t, tt.wantW, w)
		assert.Equal(t, tt.wantH, h)
	}
}
