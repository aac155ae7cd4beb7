package sdf

import (
	"math"

	"github.com/threadkit/sdf/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// m44 is a 4x4 affine transformation in row major order.
type m44 = d3.Transform

// Identity3D returns the identity transformation.
func Identity3D() m44 {
	return d3.Transform{}
}

// Translate3D returns a 4x4 translation matrix.
func Translate3D(v r3.Vec) m44 {
	return d3.Transform{}.Translate(v)
}

// RotateZ3D returns a 4x4 rotation matrix about the Z axis by theta radians.
func RotateZ3D(theta float64) m44 {
	s, c := math.Sincos(theta)
	return d3.NewTransform([]float64{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// MirrorXZ returns a 4x4 matrix mirroring across the XZ plane (y -> -y).
func MirrorXZ() m44 {
	return d3.NewTransform([]float64{
		1, 0, 0, 0,
		0, -1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Frame3D returns the rigid transformation that maps the canonical
// X, Y, Z axes onto x, y, z and the origin onto o. The axes must be orthonormal.
func Frame3D(o, x, y, z r3.Vec) m44 {
	return d3.NewTransform([]float64{
		x.X, y.X, z.X, o.X,
		x.Y, y.Y, z.Y, o.Y,
		x.Z, y.Z, z.Z, o.Z,
		0, 0, 0, 1,
	})
}
