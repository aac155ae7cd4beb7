package thread

import "math"

// Tolerances are the numeric knobs of thread construction.
type Tolerances struct {
	// Samples is the number of cross sections placed along each loop,
	// including both ends. Fade tips taper over the same samples.
	Samples int
	// ChamferClearance is added to the outer radius of the chamfer
	// shape so it does not share a surface with the thread apex.
	ChamferClearance float64
	// InternalChamferShrink is removed from the inner radius of the
	// chamfer shape of internal threads so the first row is not lost.
	InternalChamferShrink float64
	// MinLoopFraction snaps loop fractions closer than this to 0 or 1.
	MinLoopFraction float64
	// Sequential disables the concurrent loop and end builders.
	Sequential bool
}

// DefaultTolerances returns the tolerances Build uses.
func DefaultTolerances() Tolerances {
	return Tolerances{
		Samples:               11,
		ChamferClearance:      0.001,
		InternalChamferShrink: 0.01,
		MinLoopFraction:       1e-9,
	}
}

func (t Tolerances) validate() error {
	if t.Samples < 2 {
		return paramErr("samples", t.Samples, "at least 2")
	}
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"chamfer clearance", t.ChamferClearance},
		{"internal chamfer shrink", t.InternalChamferShrink},
		{"minimum loop fraction", t.MinLoopFraction},
	} {
		if !(v.val >= 0) || math.IsInf(v.val, 1) {
			return paramErr(v.name, v.val, "a finite number >= 0")
		}
	}
	if t.MinLoopFraction >= 0.5 {
		return paramErr("minimum loop fraction", t.MinLoopFraction, "less than 0.5")
	}
	return nil
}
