// Package matter compensates printed parts for the way their material
// deforms as it cools.
package matter

import "github.com/threadkit/sdf"

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
	// PETG shrinks a little more than PLA and strings more when pulled.
	PETG = ViscousMaterial{shrink: 0.4e-2, pullShrink: .5}
)

// ViscousMaterial is a printing material that shrinks as it cools.
type ViscousMaterial struct {
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float64
}

// NewViscousMaterial returns a material with a relative thermal shrink and
// an absolute viscoelastic pull shrink in millimetres.
func NewViscousMaterial(shrink, pullShrink float64) ViscousMaterial {
	if shrink < 0 || shrink >= 1 || pullShrink < 0 {
		panic("shrink must be in [0,1) and pull shrink must not be negative")
	}
	return ViscousMaterial{shrink: shrink, pullShrink: pullShrink}
}

// Scale scales a part up so it cools down to its modelled size.
func (m ViscousMaterial) Scale(s sdf.SDF3) sdf.SDF3 {
	return sdf.ScaleUniform3D(s, 1/(1-m.shrink))
}

// InternalDimScale returns the diameter a hole should be modelled at to
// print at real diameter.
func (m ViscousMaterial) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic("InternalDimScale only works for non-zero dimensions")
	}
	return real*(m.shrink+1) + m.pullShrink
}

// Compensation returns the radial allowance a printed thread of the given
// nominal radius needs. It is half the growth InternalDimScale gives the
// diameter and is meant for the plastic bottle thread Compensation field.
func (m ViscousMaterial) Compensation(nominalRadius float64) float64 {
	return (m.InternalDimScale(2*nominalRadius) - 2*nominalRadius) / 2
}
