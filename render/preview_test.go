package render_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/threadkit/sdf/form3"
	"github.com/threadkit/sdf/render"
	"gonum.org/v1/plot/cmpimg"
)

// imgDelta is the normalized tolerance of image comparisons
// (0: perfect match, 1: loose match).
const imgDelta = 0.01

func TestPreviewPNG(t *testing.T) {
	dir := t.TempDir()
	stlPath := filepath.Join(dir, "cylinder.stl")
	cyl, _ := form3.Cylinder(2, 0.8, 0.1)
	if err := render.CreateSTL(stlPath, render.NewOctreeRenderer(cyl, 60)); err != nil {
		t.Fatal(err)
	}
	view := render.DefaultView()
	view.Width, view.Height, view.Scale = 320, 180, 1
	var pngs [2][]byte
	for i := range pngs {
		path := filepath.Join(dir, "preview.png")
		if err := render.PreviewPNG(stlPath, path, view); err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		pngs[i] = b
	}
	equal, err := cmpimg.EqualApprox("png", pngs[0], pngs[1], imgDelta)
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("previews of the same mesh differ")
	}

	fp, err := os.Open(filepath.Join(dir, "preview.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	img, err := png.Decode(fp)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 180 {
		t.Errorf("image size %v", b)
	}
	// the shaded mesh covers the image center
	bg, _, _, _ := img.At(0, 0).RGBA()
	c, _, _, _ := img.At(160, 90).RGBA()
	if bg == c {
		t.Error("image center has the background color")
	}

	view.Far = view.Near
	if err := render.PreviewPNG(stlPath, filepath.Join(dir, "bad.png"), view); err == nil {
		t.Error("accepted empty depth range")
	}
}
