package sdf

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// 2D signed distance function utility functions.

// SDF2 is the interface to a 2d signed distance function object.
type SDF2 interface {
	// Evaluate takes a point in 2D space as input and returns
	// the minimum distance of the SDF2 to the point. The distance
	// is negative if the point is contained within the SDF2.
	Evaluate(p r2.Vec) float64

	// Bounds returns the bounding box that completely contains the SDF2.
	Bounds() r2.Box
}

// MinFunc is a minimum functions for SDF blending.
type MinFunc func(a, b float64) float64

// scaleUniform2 is an SDF2 scaled uniformly about the origin.
type scaleUniform2 struct {
	sdf     SDF2
	k, invk float64
	bb      r2.Box
}

// ScaleUniform2D scales an SDF2 by k about the origin.
// Distance is preserved under uniform scaling.
func ScaleUniform2D(sdf SDF2, k float64) SDF2 {
	if sdf == nil {
		panic("nil SDF2 argument")
	}
	if k <= 0 {
		panic("scale factor must be positive")
	}
	bb := sdf.Bounds()
	return &scaleUniform2{
		sdf:  sdf,
		k:    k,
		invk: 1.0 / k,
		bb:   r2.Box{Min: r2.Scale(k, bb.Min), Max: r2.Scale(k, bb.Max)},
	}
}

// Evaluate returns the minimum distance to an SDF2 with uniform scaling.
func (s *scaleUniform2) Evaluate(p r2.Vec) float64 {
	return s.sdf.Evaluate(r2.Scale(s.invk, p)) * s.k
}

// Bounds returns the bounding box of an SDF2 with uniform scaling.
func (s *scaleUniform2) Bounds() r2.Box {
	return s.bb
}

// offset2 offsets the distance of an SDF2.
type offset2 struct {
	sdf    SDF2
	offset float64
	bb     r2.Box
}

// Offset2D returns an SDF2 that offsets the distance function of another SDF2.
// Positive offsets grow the shape and round its convex corners.
func Offset2D(sdf SDF2, offset float64) SDF2 {
	if sdf == nil {
		panic("nil SDF2 argument")
	}
	bb := sdf.Bounds()
	d := r2.Vec{X: offset, Y: offset}
	return &offset2{
		sdf:    sdf,
		offset: offset,
		bb:     r2.Box{Min: r2.Sub(bb.Min, d), Max: r2.Add(bb.Max, d)},
	}
}

// Evaluate returns the minimum distance to an offset SDF2.
func (s *offset2) Evaluate(p r2.Vec) float64 {
	return s.sdf.Evaluate(p) - s.offset
}

// Bounds returns the bounding box of an offset SDF2.
func (s *offset2) Bounds() r2.Box {
	return s.bb
}
