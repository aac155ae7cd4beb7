package obj3

import (
	"math"

	"github.com/threadkit/sdf"
	"github.com/threadkit/sdf/form2"
	"github.com/threadkit/sdf/form3"
	"github.com/threadkit/sdf/form3/obj3/thread"
	"gonum.org/v1/gonum/spatial/r3"
)

// Hex Heads for nuts and bolts.

// HeadRound selects which faces of a hex head are domed.
type HeadRound int

const (
	RoundNone HeadRound = iota
	RoundTop
	RoundBottom
	RoundBoth
)

// HexHead returns the rounded hex head for a nut or bolt, centered on
// the origin.
func HexHead(radius, height float64, round HeadRound) (sdf.SDF3, error) {
	if !(radius > 0) || !(height > 0) {
		return nil, &thread.ParameterError{Field: "hex head size", Value: [2]float64{radius, height}, Legal: "positive radius and height"}
	}
	if round < RoundNone || round > RoundBoth {
		return nil, &thread.ParameterError{Field: "hex head rounding", Value: round, Legal: "none, top, bottom or both"}
	}
	// basic hex body
	cornerRound := radius * 0.08
	nagon, err := form2.Nagon(6, radius-cornerRound)
	if err != nil {
		return nil, &thread.GeometryError{Op: "hex head", Err: err}
	}
	hex2d, err := form2.Polygon(nagon)
	if err != nil {
		return nil, &thread.GeometryError{Op: "hex head", Err: err}
	}
	hex3d := sdf.Extrude3D(sdf.Offset2D(hex2d, cornerRound), height)
	if round == RoundNone {
		return hex3d, nil
	}
	topRound := radius * 1.6
	d := radius * math.Cos(30.0*math.Pi/180.0)
	sphere, err := form3.Sphere(topRound)
	if err != nil {
		return nil, &thread.GeometryError{Op: "hex head", Err: err}
	}
	zOfs := math.Sqrt(topRound*topRound-d*d) - height/2
	if round == RoundTop || round == RoundBoth {
		hex3d = sdf.Intersect3D(hex3d, sdf.Transform3D(sphere, sdf.Translate3D(r3.Vec{Z: -zOfs})))
	}
	if round == RoundBottom || round == RoundBoth {
		hex3d = sdf.Intersect3D(hex3d, sdf.Transform3D(sphere, sdf.Translate3D(r3.Vec{Z: zOfs})))
	}
	return hex3d, nil
}
