package thread

import (
	"math"

	"github.com/threadkit/sdf"
	"github.com/threadkit/sdf/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Frame is a pose on the thread path. The axes are orthonormal
// and right handed: Up x Lateral = Normal.
type Frame struct {
	Origin r3.Vec
	// Up is the cross section X axis: global Z made orthogonal to Normal.
	Up r3.Vec
	// Lateral is the cross section Y axis, Normal x Up.
	Lateral r3.Vec
	// Normal is the path tangent.
	Normal r3.Vec
}

// Transform returns the rigid transformation that takes the canonical
// axes and origin onto the frame.
func (f Frame) Transform() d3.Transform {
	return sdf.Frame3D(f.Origin, f.Up, f.Lateral, f.Normal)
}

// Equal reports whether f and g coincide in position and orientation
// within tol.
func (f Frame) Equal(g Frame, tol float64) bool {
	return d3.EqualWithin(f.Origin, g.Origin, tol) &&
		d3.EqualWithin(f.Up, g.Up, tol) &&
		d3.EqualWithin(f.Lateral, g.Lateral, tol) &&
		d3.EqualWithin(f.Normal, g.Normal, tol)
}

func (f Frame) apply(t d3.Transform) Frame {
	return Frame{
		Origin:  t.Transform(f.Origin),
		Up:      t.ApplyDirection(f.Up),
		Lateral: t.ApplyDirection(f.Lateral),
		Normal:  t.ApplyDirection(f.Normal),
	}
}

// joint returns the rigid motion that brings from onto to.
func joint(to, from Frame) d3.Transform {
	return to.Transform().Mul(from.Transform().Inv())
}

// helix is the path of one loop. It starts on the X axis at z=0 and
// turns counter clockwise (seen from +Z) for right hand threads.
type helix struct {
	radius   float64
	pitch    float64
	fraction float64 // of a full turn, (0,1]
	hand     float64 // +1 right, -1 left
}

// sweep is the unsigned angle covered by the path.
func (h helix) sweep() float64 { return 2 * math.Pi * h.fraction }

func (h helix) angle(u float64) float64 { return h.hand * h.sweep() * u }

func (h helix) point(u float64) r3.Vec {
	s, c := math.Sincos(h.angle(u))
	return r3.Vec{X: h.radius * c, Y: h.radius * s, Z: h.fraction * h.pitch * u}
}

func (h helix) tangent(u float64) r3.Vec {
	s, c := math.Sincos(h.angle(u))
	circ := 2 * math.Pi * h.radius
	return r3.Unit(r3.Vec{X: -h.hand * circ * s, Y: h.hand * circ * c, Z: h.pitch})
}

func (h helix) frame(u float64) Frame {
	n := h.tangent(u)
	up := r3.Unit(r3.Sub(r3.Vec{Z: 1}, r3.Scale(n.Z, n)))
	return Frame{
		Origin:  h.point(u),
		Up:      up,
		Lateral: r3.Cross(n, up),
		Normal:  n,
	}
}

// cosLead is the cosine of the lead angle. Axial distances in a plane
// holding the axis shrink by this factor when measured across the path.
func (h helix) cosLead() float64 {
	circ := 2 * math.Pi * h.radius
	return circ / math.Hypot(circ, h.pitch)
}
