package render_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/threadkit/sdf/form3"
	"github.com/threadkit/sdf/render"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSTLCreateWriteRead(t *testing.T) {
	const quality = 20
	box, err := form3.Box(r3.Vec{X: 3, Y: 2, Z: 1}, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "box.stl")
	err = render.CreateSTL(path, render.NewOctreeRenderer(box, quality))
	if err != nil {
		t.Fatal(err)
	}
	bfile, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(render.NewOctreeRenderer(box, quality))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = render.WriteSTL(&b, model)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), bfile) {
		t.Fatalf("WriteSTL and CreateSTL output mismatch: %d and %d bytes", b.Len(), len(bfile))
	}

	output, err := render.ReadSTL(&b)
	if err != nil && !errors.Is(err, render.ErrNormalMismatch) {
		t.Fatal(err)
	}
	if len(output) != len(model) {
		t.Fatalf("read %d triangles, wrote %d", len(output), len(model))
	}
	const tol = 1e-5
	for i, want := range model {
		for j := range want.V {
			d := r3.Norm(r3.Sub(output[i].V[j], want.V[j]))
			if d > tol*(1+r3.Norm(want.V[j])) {
				t.Fatalf("triangle %d vertex %d: got %v, want %v", i, j, output[i].V[j], want.V[j])
			}
		}
	}
}

func TestReadSTLErrors(t *testing.T) {
	if _, err := render.ReadSTL(bytes.NewReader(nil)); err == nil {
		t.Error("empty input read without error")
	}
	var header [84]byte
	if _, err := render.ReadSTL(bytes.NewReader(header[:])); err == nil {
		t.Error("zero triangle STL read without error")
	}
	header[80] = 2 // two triangles, none present
	if _, err := render.ReadSTL(bytes.NewReader(header[:])); err == nil {
		t.Error("truncated STL read without error")
	}
	if err := render.WriteSTL(&bytes.Buffer{}, nil); err == nil {
		t.Error("wrote empty model")
	}
}

func TestVolume(t *testing.T) {
	box, _ := form3.Box(r3.Vec{X: 3, Y: 2, Z: 1}, 0)
	cyl, _ := form3.Cylinder(4, 2, 0)
	for _, tc := range []struct {
		name string
		r    render.Renderer
		want float64
	}{
		{"box", render.NewMarchingCubesRenderer(box, 90), 6},
		{"box octree", render.NewOctreeRenderer(box, 90), 6},
		{"cylinder", render.NewOctreeRenderer(cyl, 100), 16 * 3.141592653589793},
	} {
		model, err := render.RenderAll(tc.r)
		if err != nil {
			t.Fatal(err)
		}
		got := render.Volume(model)
		if d := (got - tc.want) / tc.want; d > 0.03 || d < -0.03 {
			t.Errorf("%s: volume %g, want %g", tc.name, got, tc.want)
		}
	}
}

func TestTriangle(t *testing.T) {
	tri := render.Triangle3{V: [3]r3.Vec{{}, {X: 1}, {Y: 1}}}
	if n := tri.Normal(); n != (r3.Vec{Z: 1}) {
		t.Errorf("normal %v", n)
	}
	if tri.Degenerate(1e-9) {
		t.Error("unit triangle reported degenerate")
	}
	tri.V[2] = r3.Vec{X: 1, Y: 1e-12}
	if !tri.Degenerate(1e-9) {
		t.Error("collapsed triangle not degenerate")
	}
}
