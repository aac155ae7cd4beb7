package sdf

import (
	"math"
	"strconv"

	"github.com/threadkit/sdf/internal/d2"
	"github.com/threadkit/sdf/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// SDF3 is the interface to a 3d signed distance function object.
type SDF3 interface {
	// Evaluate takes a point in 3D space as input and returns
	// the minimum distance of the SDF3 to the point. The distance
	// is negative if the point is contained within the SDF3.
	Evaluate(p r3.Vec) float64

	// Bounds returns the bounding box that completely contains the SDF3.
	Bounds() r3.Box
}

type SDF3Union interface {
	SDF3
	SetMin(MinFunc)
}

type SDF3Diff interface {
	SDF3
	SetMax(MaxFunc)
}

// revolution3 solid of revolution, SDF2 to SDF3.
type revolution3 struct {
	sdf   SDF2
	theta float64 // angle for partial revolutions
	norm  r2.Vec  // pre-calculated normal to theta line
	bb    r3.Box
}

// Revolve3D returns an SDF3 for a solid of revolution. The SDF2's
// X axis is revolved about the Z axis, the Y axis becomes Z.
func Revolve3D(sdf SDF2, theta float64) SDF3 {
	if sdf == nil {
		panic("nil SDF2 argument")
	}
	if theta <= 0 {
		return empty3{}
	}
	if math.Abs(theta-tau) < tolerance {
		theta = 0 // internally theta=0 is a full revolution.
	}
	s := revolution3{}
	s.sdf = sdf
	s.theta = math.Mod(math.Abs(theta), tau)
	sin := math.Sin(s.theta)
	cos := math.Cos(s.theta)
	s.norm = r2.Vec{X: -sin, Y: cos}
	var vset d2.Set
	if theta == 0 {
		vset = []r2.Vec{{X: 1, Y: 1}, {X: -1, Y: -1}}
	} else {
		vset = []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: cos, Y: sin}}
		if s.theta > 0.5*pi {
			vset = append(vset, r2.Vec{X: 0, Y: 1})
		}
		if s.theta > pi {
			vset = append(vset, r2.Vec{X: -1, Y: 0})
		}
		if s.theta > 1.5*pi {
			vset = append(vset, r2.Vec{X: 0, Y: -1})
		}
	}
	bb := s.sdf.Bounds()
	l := math.Max(math.Abs(bb.Min.X), math.Abs(bb.Max.X))
	vmin := r2.Scale(l, vset.Min())
	vmax := r2.Scale(l, vset.Max())
	s.bb = r3.Box{Min: r3.Vec{X: vmin.X, Y: vmin.Y, Z: bb.Min.Y}, Max: r3.Vec{X: vmax.X, Y: vmax.Y, Z: bb.Max.Y}}
	return &s
}

// Evaluate returns the minimum distance to a solid of revolution.
func (s *revolution3) Evaluate(p r3.Vec) float64 {
	x := math.Hypot(p.X, p.Y)
	a := s.sdf.Evaluate(r2.Vec{X: x, Y: p.Z})
	b := a
	if s.theta != 0 {
		// combine two vertical planes to give an intersection wedge
		d := r2.Dot(s.norm, r2.Vec{X: p.X, Y: p.Y})
		if s.theta < pi {
			b = math.Max(-p.Y, d)
		} else {
			b = math.Min(-p.Y, d)
		}
	}
	return math.Max(a, b)
}

// Bounds returns the bounding box for a solid of revolution.
func (s *revolution3) Bounds() r3.Box {
	return s.bb
}

// transform3 is an SDF3 transformed with a 4x4 transformation matrix.
type transform3 struct {
	sdf     SDF3
	matrix  m44
	inverse m44
	bb      r3.Box
}

// Transform3D applies a transformation matrix to an SDF3.
func Transform3D(sdf SDF3, matrix m44) SDF3 {
	if sdf == nil {
		panic("nil SDF3 argument")
	}
	s := transform3{}
	s.sdf = sdf
	s.matrix = matrix
	s.inverse = matrix.Inv()
	s.bb = r3.Box(matrix.ApplyBox(d3.Box(sdf.Bounds())))
	return &s
}

// Evaluate returns the minimum distance to a transformed SDF3.
// Distance is *not* preserved with scaling.
func (s *transform3) Evaluate(p r3.Vec) float64 {
	return s.sdf.Evaluate(s.inverse.Transform(p))
}

// Bounds returns the bounding box of a transformed SDF3.
func (s *transform3) Bounds() r3.Box {
	return s.bb
}

// union3 is a union of SDF3s.
type union3 struct {
	sdf []SDF3
	min MinFunc
	bb  r3.Box
}

// Union3D returns the union of multiple SDF3 objects.
func Union3D(sdf ...SDF3) SDF3Union {
	if len(sdf) < 2 {
		panic("union require at least 2 sdfs")
	}
	s := union3{
		sdf: sdf,
	}
	for i, x := range s.sdf {
		if x == nil {
			panic("nil sdf argument (" + strconv.Itoa(i) + ") to Union3D")
		}
	}
	bb := d3.Box(s.sdf[0].Bounds())
	for _, x := range s.sdf[1:] {
		bb = bb.Extend(d3.Box(x.Bounds()))
	}
	s.bb = r3.Box(bb)
	s.min = math.Min
	return &s
}

// Evaluate returns the minimum distance to an SDF3 union.
func (s *union3) Evaluate(p r3.Vec) float64 {
	d := s.sdf[0].Evaluate(p)
	for _, x := range s.sdf[1:] {
		d = s.min(d, x.Evaluate(p))
	}
	return d
}

// SetMin sets the minimum function to control blending.
func (s *union3) SetMin(min MinFunc) {
	s.min = min
}

// Bounds returns the bounding box of an SDF3 union.
func (s *union3) Bounds() r3.Box {
	return s.bb
}

// diff3 is the difference of two SDF3s, s0 - s1.
type diff3 struct {
	s0  SDF3
	s1  SDF3
	max MaxFunc
	bb  r3.Box
}

// Difference3D returns the difference of two SDF3s, s0 - s1.
func Difference3D(s0, s1 SDF3) SDF3Diff {
	if s1 == nil || s0 == nil {
		panic("nil argument to Difference3D")
	}
	s := diff3{}
	s.s0 = s0
	s.s1 = s1
	s.max = math.Max
	s.bb = s0.Bounds()
	return &s
}

// Evaluate returns the minimum distance to the SDF3 difference.
func (s *diff3) Evaluate(p r3.Vec) float64 {
	return s.max(s.s0.Evaluate(p), -s.s1.Evaluate(p))
}

// SetMax sets the maximum function to control blending.
func (s *diff3) SetMax(max MaxFunc) {
	s.max = max
}

// Bounds returns the bounding box of the SDF3 difference.
func (s *diff3) Bounds() r3.Box {
	return s.bb
}

// intersection3 is the intersection of two SDF3s.
type intersection3 struct {
	s0  SDF3
	s1  SDF3
	max MaxFunc
	bb  r3.Box
}

// Intersect3D returns the intersection of two SDF3s.
// The bounding box is the overlap of both bounding boxes and
// may be empty (see IsEmpty) when the operands are disjoint.
func Intersect3D(s0, s1 SDF3) SDF3Diff {
	if s0 == nil || s1 == nil {
		panic("nil argument to Intersect3D")
	}
	s := intersection3{}
	s.s0 = s0
	s.s1 = s1
	s.max = math.Max
	s.bb = overlap3(s0.Bounds(), s1.Bounds())
	return &s
}

// Evaluate returns the minimum distance to the SDF3 intersection.
func (s *intersection3) Evaluate(p r3.Vec) float64 {
	return s.max(s.s0.Evaluate(p), s.s1.Evaluate(p))
}

// SetMax sets the maximum function to control blending.
func (s *intersection3) SetMax(max MaxFunc) {
	s.max = max
}

// Bounds returns the bounding box of an SDF3 intersection.
func (s *intersection3) Bounds() r3.Box {
	return s.bb
}

// cut3 makes a planar cut through an SDF3.
type cut3 struct {
	sdf SDF3
	a   r3.Vec // point on plane
	n   r3.Vec // normal to plane
	bb  r3.Box // bounding box
}

// Cut3D cuts an SDF3 along a plane passing through a with normal n.
// The SDF3 on the same side as the normal remains. Planes normal to
// a coordinate axis also cut the bounding box.
func Cut3D(sdf SDF3, a, n r3.Vec) SDF3 {
	if sdf == nil {
		panic("nil SDF3 argument")
	}
	s := cut3{}
	s.sdf = sdf
	s.a = a
	n = r3.Unit(n)
	s.n = r3.Scale(-1, n)
	s.bb = cutBox3(sdf.Bounds(), a, n)
	return &s
}

// Evaluate returns the minimum distance to the cut SDF3.
func (s *cut3) Evaluate(p r3.Vec) float64 {
	return math.Max(r3.Dot(r3.Sub(p, s.a), s.n), s.sdf.Evaluate(p))
}

// Bounds returns the bounding box of the cut SDF3.
func (s *cut3) Bounds() r3.Box {
	return s.bb
}

// cutBox3 trims bb to the half-space kept by a cut with unit normal n
// through a. Only axis-aligned normals trim the box.
func cutBox3(bb r3.Box, a, n r3.Vec) r3.Box {
	switch {
	case n == r3.Vec{X: 1}:
		bb.Min.X = math.Max(bb.Min.X, a.X)
	case n == r3.Vec{X: -1}:
		bb.Max.X = math.Min(bb.Max.X, a.X)
	case n == r3.Vec{Y: 1}:
		bb.Min.Y = math.Max(bb.Min.Y, a.Y)
	case n == r3.Vec{Y: -1}:
		bb.Max.Y = math.Min(bb.Max.Y, a.Y)
	case n == r3.Vec{Z: 1}:
		bb.Min.Z = math.Max(bb.Min.Z, a.Z)
	case n == r3.Vec{Z: -1}:
		bb.Max.Z = math.Min(bb.Max.Z, a.Z)
	}
	return bb
}

// overlap3 returns the overlapping region of two boxes.
func overlap3(a, b r3.Box) r3.Box {
	return r3.Box{
		Min: d3.MaxElem(a.Min, b.Min),
		Max: d3.MinElem(a.Max, b.Max),
	}
}

// IsEmpty reports whether the bounding box of s encloses no volume.
func IsEmpty(s SDF3) bool {
	if _, ok := s.(empty3); ok {
		return true
	}
	bb := s.Bounds()
	return bb.Min.X >= bb.Max.X || bb.Min.Y >= bb.Max.Y || bb.Min.Z >= bb.Max.Z
}

// empty3 is an SDF3 with no volume.
type empty3 struct{}

// Evaluate returns a distance that is always outside.
func (empty3) Evaluate(r3.Vec) float64 { return math.MaxFloat64 }

// Bounds returns a zero size box at the origin.
func (empty3) Bounds() r3.Box { return r3.Box{} }

// scaleUniform3 is an SDF3 scaled uniformly about the origin.
type scaleUniform3 struct {
	sdf     SDF3
	k, invk float64
	bb      r3.Box
}

// ScaleUniform3D scales an SDF3 by k about the origin.
func ScaleUniform3D(sdf SDF3, k float64) SDF3 {
	if sdf == nil {
		panic("nil SDF3 argument")
	}
	if k <= 0 {
		panic("scale factor must be positive")
	}
	bb := sdf.Bounds()
	return &scaleUniform3{
		sdf:  sdf,
		k:    k,
		invk: 1.0 / k,
		bb:   r3.Box{Min: r3.Scale(k, bb.Min), Max: r3.Scale(k, bb.Max)},
	}
}

// Evaluate returns the minimum distance to an SDF3 with uniform scaling.
func (s *scaleUniform3) Evaluate(p r3.Vec) float64 {
	return s.sdf.Evaluate(r3.Scale(s.invk, p)) * s.k
}

// Bounds returns the bounding box of an SDF3 with uniform scaling.
func (s *scaleUniform3) Bounds() r3.Box {
	return s.bb
}

// extrude3 extrudes an SDF2 along the Z axis.
type extrude3 struct {
	sdf    SDF2
	height float64 // half height
	bb     r3.Box
}

// Extrude3D extrudes an SDF2 to a solid of the given height centered on z=0.
func Extrude3D(sdf SDF2, height float64) SDF3 {
	if sdf == nil {
		panic("nil SDF2 argument")
	}
	if height <= 0 {
		panic("height <= 0")
	}
	s := extrude3{sdf: sdf, height: height / 2}
	bb := sdf.Bounds()
	s.bb = r3.Box{Min: r3.Vec{X: bb.Min.X, Y: bb.Min.Y, Z: -s.height}, Max: r3.Vec{X: bb.Max.X, Y: bb.Max.Y, Z: s.height}}
	return &s
}

// Evaluate returns the minimum distance to an extrusion.
func (s *extrude3) Evaluate(p r3.Vec) float64 {
	d := s.sdf.Evaluate(r2.Vec{X: p.X, Y: p.Y})
	b := math.Abs(p.Z) - s.height
	if d < 0 && b < 0 {
		return math.Max(d, b)
	}
	return math.Hypot(math.Max(d, 0), math.Max(b, 0))
}

// Bounds returns the bounding box of an extrusion.
func (s *extrude3) Bounds() r3.Box {
	return s.bb
}
