package render

import (
	"io"

	sdfxrender "github.com/deadsy/sdfx/render"
	sdfx "github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/threadkit/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer produces the triangles of a mesh. ReadTriangles returns io.EOF
// once every triangle has been read.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle3 is a 3D triangle. Vertices are counter clockwise seen from outside.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate returns true if two vertices of the triangle are within tol.
func (t Triangle3) Degenerate(tol float64) bool {
	return equalWithin(t.V[0], t.V[1], tol) ||
		equalWithin(t.V[1], t.V[2], tol) ||
		equalWithin(t.V[2], t.V[0], tol)
}

func equalWithin(a, b r3.Vec, tol float64) bool {
	d := r3.Sub(a, b)
	return d.X <= tol && d.X >= -tol && d.Y <= tol && d.Y >= -tol && d.Z <= tol && d.Z >= -tol
}

// sdfxModel evaluates an SDF3 for the sdfx renderers.
type sdfxModel struct {
	s  sdf.SDF3
	bb sdfx.Box3
}

func newSDFXModel(s sdf.SDF3) sdfxModel {
	bb := s.Bounds()
	return sdfxModel{
		s: s,
		bb: sdfx.Box3{
			Min: v3.Vec{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Min.Z},
			Max: v3.Vec{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Max.Z},
		},
	}
}

func (m sdfxModel) Evaluate(p v3.Vec) float64 {
	return m.s.Evaluate(r3.Vec{X: p.X, Y: p.Y, Z: p.Z})
}

func (m sdfxModel) BoundingBox() sdfx.Box3 { return m.bb }

// mesher meshes its model on the first read and then hands out
// the buffered triangles.
type mesher struct {
	model  sdfxModel
	render sdfxrender.Render3
	meshed bool
	buf    triangle3Buffer
}

// NewMarchingCubesRenderer returns a Renderer sampling s on a uniform grid
// of meshCells cells along the longest side of its bounding box.
func NewMarchingCubesRenderer(s sdf.SDF3, meshCells int) Renderer {
	if meshCells < 2 {
		panic("meshCells must be 2 or larger")
	}
	return &mesher{model: newSDFXModel(s), render: sdfxrender.NewMarchingCubesUniform(meshCells)}
}

// NewOctreeRenderer returns a Renderer that skips empty space with an
// octree before marching cubes. It is faster than the uniform renderer
// for sparse models such as threads.
func NewOctreeRenderer(s sdf.SDF3, meshCells int) Renderer {
	if meshCells < 2 {
		panic("meshCells must be 2 or larger")
	}
	return &mesher{model: newSDFXModel(s), render: sdfxrender.NewMarchingCubesOctree(meshCells)}
}

// ReadTriangles writes rendered triangles into dst.
func (m *mesher) ReadTriangles(dst []Triangle3) (int, error) {
	if len(dst) == 0 {
		panic("cannot write to empty triangle slice")
	}
	if !m.meshed {
		m.meshed = true
		for _, t := range sdfxrender.ToTriangles(m.model, m.render) {
			tri := Triangle3{V: [3]r3.Vec{
				{X: t[0].X, Y: t[0].Y, Z: t[0].Z},
				{X: t[1].X, Y: t[1].Y, Z: t[1].Z},
				{X: t[2].X, Y: t[2].Y, Z: t[2].Z},
			}}
			if st := stlFromTriangle3(tri); st.degenerate(0) || bad3F32(st.Normal) {
				// collapsed vertices or zero area
				continue
			}
			m.buf.Write([]Triangle3{tri})
		}
	}
	n := m.buf.Read(dst)
	if m.buf.Len() == 0 {
		return n, io.EOF
	}
	return n, nil
}
