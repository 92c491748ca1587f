package scene

import (
	"errors"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	xdraw "golang.org/x/image/draw"

	"orbitals/animator"
	"orbitals/config"
)

// LoadModel reads an STL file in the background and resolves to a node
// centred on its bounding box, placed and scaled per cfg. A failure is
// logged and the future stays empty; there is no retry.
func LoadModel(cfg config.Model, seed int64) *animator.Future[*Node] {
	f := animator.NewFuture[*Node]()
	go func() {
		node, err := readModel(cfg, seed)
		if err != nil {
			log.Printf("[ASSET LOAD ERROR]: %s\n", err)
			f.Fail(err)
			return
		}
		f.Resolve(node)
	}()
	return f
}

func readModel(cfg config.Model, seed int64) (*Node, error) {
	r, err := os.Open(cfg.Path)
	if err != nil {
		return nil, essentials.AddCtx("load model", err)
	}
	defer r.Close()

	triangles, err := model3d.ReadSTL(r)
	if err != nil {
		return nil, essentials.AddCtx("load model "+cfg.Path, err)
	}
	if len(triangles) == 0 {
		return nil, essentials.AddCtx("load model "+cfg.Path, errors.New("model has no triangles"))
	}
	mesh := model3d.NewMeshTriangles(triangles)
	mesh = mesh.Translate(mesh.Min().Mid(mesh.Max()).Scale(-1))

	m := FromModel3D(mesh)
	if err := paint(m, cfg.Material, seed); err != nil {
		return nil, essentials.AddCtx("load model "+cfg.Path, err)
	}
	mat, err := newMaterial(cfg.Material)
	if err != nil {
		return nil, essentials.AddCtx("load model "+cfg.Path, err)
	}

	node := NewNode("model", m, mat)
	node.Position = mgl32.Vec3(cfg.Position)
	node.Scale = mgl32.Vec3{cfg.Scale, cfg.Scale, cfg.Scale}
	return node, nil
}

// LoadTexture decodes a PNG or JPEG in the background, downscaling it so
// neither side exceeds maxSize. Rows are flipped so the first row is the
// bottom of the image, as GL expects.
func LoadTexture(path string, maxSize int) *animator.Future[*image.RGBA] {
	f := animator.NewFuture[*image.RGBA]()
	go func() {
		img, err := readTexture(path, maxSize)
		if err != nil {
			log.Printf("[ASSET LOAD ERROR]: %s\n", err)
			f.Fail(err)
			return
		}
		f.Resolve(img)
	}()
	return f
}

func readTexture(path string, maxSize int) (*image.RGBA, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, essentials.AddCtx("load texture", err)
	}
	defer r.Close()

	src, _, err := image.Decode(r)
	if err != nil {
		return nil, essentials.AddCtx("load texture "+path, err)
	}

	b := src.Bounds()
	w, h := fitWithin(b.Dx(), b.Dy(), maxSize)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	}
	flipRows(dst)
	return dst, nil
}

// fitWithin scales w x h down, keeping its aspect ratio, until the longer
// side is at most limit. Sides never drop below one pixel.
func fitWithin(w, h, limit int) (int, int) {
	if w <= limit && h <= limit {
		return w, h
	}
	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}

func flipRows(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}
