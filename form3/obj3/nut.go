package obj3

import (
	"github.com/threadkit/sdf"
	"github.com/threadkit/sdf/form3/must3"
	"github.com/threadkit/sdf/form3/obj3/thread"
	"gonum.org/v1/gonum/spatial/r3"
)

// NutStyle is the outer shape of a nut or bolt head.
type NutStyle int

const (
	_ NutStyle = iota
	NutCircular
	NutHex
)

func (c NutStyle) String() (str string) {
	switch c {
	case NutCircular:
		str = "circular"
	case NutHex:
		str = "hex"
	default:
		str = "unknown"
	}
	return str
}

// NutParms defines the parameters for a nut.
type NutParms struct {
	Thread    string // thread database name, e.g. "M6x1"
	Hand      thread.Hand
	Style     NutStyle
	Tolerance float64 // add to internal thread radius
}

// Nut returns a simple nut suitable for 3d printing, centered on the origin.
func Nut(k NutParms) (sdf.SDF3, error) {
	if k.Tolerance < 0 {
		return nil, &thread.ParameterError{Field: "tolerance", Value: k.Tolerance, Legal: "not negative"}
	}
	param, err := thread.Lookup(k.Thread)
	if err != nil {
		return nil, err
	}
	nr := param.HexRadius()
	nh := param.HexHeight()
	var nut sdf.SDF3
	switch k.Style {
	case NutHex:
		nut, err = HexHead(nr, nh, RoundBoth)
	case NutCircular:
		nut = must3.Cylinder(nh, nr*1.1, 0)
	default:
		return nil, &thread.ParameterError{Field: "nut style", Value: k.Style, Legal: "hex or circular"}
	}
	if err != nil {
		return nil, err
	}

	// internal thread teeth stand in a bore at their root radius
	iso := thread.ISO{
		D:      2 * (param.Radius + k.Tolerance),
		P:      param.Pitch,
		Length: nh,
		Hand:   k.Hand,
		Ends:   []thread.Finish{thread.Chamfer, thread.Chamfer},
		Taper:  param.Taper,
	}
	spec, err := iso.Spec()
	if err != nil {
		return nil, err
	}
	res, err := thread.Build(spec)
	if err != nil {
		return nil, err
	}
	a, err := res.Assembly()
	if err != nil {
		return nil, err
	}
	bore := must3.Cylinder(2*nh, spec.RootRadius, 0)
	teeth := sdf.Transform3D(a, sdf.Translate3D(r3.Vec{Z: -nh / 2}))
	return sdf.Union3D(sdf.Difference3D(nut, bore), teeth), nil
}
