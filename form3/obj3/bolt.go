package obj3

import (
	"github.com/threadkit/sdf"
	"github.com/threadkit/sdf/form3/must3"
	"github.com/threadkit/sdf/form3/obj3/thread"
	"gonum.org/v1/gonum/spatial/r3"
)

// BoltParms defines the parameters for a bolt.
type BoltParms struct {
	Thread      string      // thread database name, e.g. "M6x1"
	Hand        thread.Hand // thread hand
	Style       NutStyle    // head style
	Tolerance   float64     // subtract from external thread radius
	TotalLength float64     // threaded length + shank length
	ShankLength float64     // non threaded length
}

// Bolt returns a simple bolt suitable for 3d printing. The head is
// centered on the origin and the shank and thread run up the Z axis.
func Bolt(k BoltParms) (sdf.SDF3, error) {
	switch {
	case !(k.TotalLength > 0):
		return nil, &thread.ParameterError{Field: "total length", Value: k.TotalLength, Legal: "greater than 0"}
	case k.ShankLength < 0 || k.ShankLength >= k.TotalLength:
		return nil, &thread.ParameterError{Field: "shank length", Value: k.ShankLength, Legal: "in [0, total length)"}
	case k.Tolerance < 0:
		return nil, &thread.ParameterError{Field: "tolerance", Value: k.Tolerance, Legal: "not negative"}
	}
	param, err := thread.Lookup(k.Thread)
	if err != nil {
		return nil, err
	}
	hr := param.HexRadius()
	hh := param.HexHeight()
	var head sdf.SDF3
	switch k.Style {
	case NutHex:
		head, err = HexHead(hr, hh, RoundBottom)
	case NutCircular:
		head = must3.Cylinder(hh, hr, hh*0.08)
	default:
		return nil, &thread.ParameterError{Field: "bolt head style", Value: k.Style, Legal: "hex or circular"}
	}
	if err != nil {
		return nil, err
	}

	// shank
	shankLength := k.ShankLength + hh/2
	var shank sdf.SDF3 = must3.Cylinder(shankLength, param.Radius, hh*0.08)
	shank = sdf.Transform3D(shank, sdf.Translate3D(r3.Vec{Z: shankLength / 2}))

	// external thread, fused onto a core at its root radius
	iso := thread.ISO{
		D:      2 * (param.Radius - k.Tolerance),
		P:      param.Pitch,
		Length: k.TotalLength - k.ShankLength,
		Ext:    true,
		Hand:   k.Hand,
		Ends:   []thread.Finish{thread.Square, thread.Chamfer},
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
	var core sdf.SDF3 = must3.Cylinder(spec.Length, spec.RootRadius, 0)
	core = sdf.Transform3D(core, sdf.Translate3D(r3.Vec{Z: spec.Length / 2}))
	threaded := sdf.Transform3D(sdf.Union3D(a, core), sdf.Translate3D(r3.Vec{Z: shankLength}))
	return sdf.Union3D(head, shank, threaded), nil
}
