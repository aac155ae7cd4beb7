package thread

import (
	"fmt"
	"math"

	"github.com/threadkit/sdf"
	"github.com/threadkit/sdf/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// loop is the cross section swept over at most one turn of the helix,
// with the frames at both ends of its path. A loop is never moved in
// place, place returns a moved copy.
type loop struct {
	kind     LoopKind
	sdf      sdf.SDF3
	fraction float64
	scales   []float64
	start    Frame
	end      Frame
}

func (l loop) place(t d3.Transform) loop {
	l.sdf = sdf.Transform3D(l.sdf, t)
	l.start = l.start.apply(t)
	l.end = l.end.apply(t)
	return l
}

// newLoop sweeps the profile over fraction of a turn. Scales holds one
// profile scale factor per sample, nil leaves the profile unscaled.
func newLoop(prof *profile, spec Spec, fraction float64, scales []float64, samples int) (loop, error) {
	if !(fraction > 0 && fraction <= 1) {
		return loop{}, geomErr("loop", fmt.Errorf("loop fraction %g outside (0,1]", fraction))
	}
	if scales == nil {
		scales = make([]float64, samples)
		for i := range scales {
			scales[i] = 1
		}
	}
	if len(scales) != samples || samples < 2 {
		return loop{}, geomErr("loop", fmt.Errorf("%d scale factors for %d samples", len(scales), samples))
	}
	path := helix{
		radius:   spec.RootRadius,
		pitch:    spec.Pitch,
		fraction: fraction,
		hand:     spec.Hand.sign(),
	}
	s := &sweep3{
		path:     path,
		cosLead:  path.cosLead(),
		sections: make([]sdf.SDF2, samples),
		uniform:  true,
	}
	for i, k := range scales {
		if !(k > 0) {
			return loop{}, geomErr("loop", fmt.Errorf("scale factor %g at sample %d", k, i))
		}
		s.uniform = s.uniform && k == scales[0]
		if k == 1 {
			s.sections[i] = prof.sdf
		} else {
			s.sections[i] = sdf.ScaleUniform2D(prof.sdf, k)
		}
	}
	s.caps[0] = newCapFace(path, 0, s.sections[0])
	s.caps[1] = newCapFace(path, 1, s.sections[samples-1])
	s.bb = sweepBounds(path, prof.Bounds(), scales)
	return loop{
		sdf:      s,
		fraction: fraction,
		scales:   scales,
		start:    path.frame(0),
		end:      path.frame(1),
	}, nil
}

// fadeScales returns the profile scale factors of a fade tip. They fall
// from 1 at the joint to 1/n at the free end. Bottom tips are swept
// towards their joint so their factors are reversed.
func fadeScales(n int, bottom bool) []float64 {
	k := make([]float64, n)
	for i := range k {
		if bottom {
			k[i] = float64(i+1) / float64(n)
		} else {
			k[i] = float64(n-i) / float64(n)
		}
	}
	return k
}

// sweep3 is the SDF3 of a helical sweep. Points are mapped into the
// plane holding the thread axis at their polar angle, where the cross
// section interpolated at that angle is evaluated. The end faces close
// the solid where the angle leaves the swept range.
type sweep3 struct {
	path     helix
	cosLead  float64
	sections []sdf.SDF2 // one per sample
	uniform  bool       // all sections are the same
	caps     [2]capFace
	bb       r3.Box
}

// Evaluate returns the minimum distance to the swept thread.
func (s *sweep3) Evaluate(p r3.Vec) float64 {
	hand := s.path.hand
	d := math.Min(s.caps[0].evaluate(p, s.cosLead, hand), s.caps[1].evaluate(p, s.cosLead, hand))
	a := sdf.WrapAngle(hand * math.Atan2(p.Y, p.X))
	sweep := s.path.sweep()
	if a > sweep {
		return d
	}
	u := a / sweep
	q := r2.Vec{
		X: (p.Z - s.path.fraction*s.path.pitch*u) * s.cosLead,
		Y: hand * (math.Hypot(p.X, p.Y) - s.path.radius),
	}
	return math.Min(d, s.section(u, q))
}

// section evaluates the cross section interpolated at path parameter u.
func (s *sweep3) section(u float64, q r2.Vec) float64 {
	if s.uniform {
		return s.sections[0].Evaluate(q)
	}
	x := u * float64(len(s.sections)-1)
	k := int(x)
	if k >= len(s.sections)-1 {
		k = len(s.sections) - 2
	}
	return sdf.Mix(s.sections[k].Evaluate(q), s.sections[k+1].Evaluate(q), x-float64(k))
}

// Bounds returns the bounding box of the swept thread.
func (s *sweep3) Bounds() r3.Box {
	return s.bb
}

// capFace is the flat end face of a sweep.
type capFace struct {
	center  r3.Vec
	radial  r3.Vec // horizontal, away from the axis
	across  r3.Vec // horizontal face normal
	section sdf.SDF2
}

func newCapFace(path helix, u float64, section sdf.SDF2) capFace {
	s, c := math.Sincos(path.angle(u))
	return capFace{
		center:  path.point(u),
		radial:  r3.Vec{X: c, Y: s},
		across:  r3.Vec{X: -s, Y: c},
		section: section,
	}
}

// evaluate never returns a negative distance, the inside of the
// sweep is decided by its body alone.
func (c capFace) evaluate(p r3.Vec, cosLead, hand float64) float64 {
	q := r3.Sub(p, c.center)
	d := c.section.Evaluate(r2.Vec{X: q.Z * cosLead, Y: hand * r3.Dot(q, c.radial)})
	return math.Max(d, math.Abs(r3.Dot(q, c.across)))
}

// sweepBounds bounds the sweep by stepping the cross section extent
// along the axis between consecutive samples.
func sweepBounds(path helix, bb r2.Box, scales []float64) r3.Box {
	n := len(scales)
	kmax := 0.0
	for _, k := range scales {
		kmax = math.Max(kmax, k)
	}
	r := path.radius + kmax*math.Max(math.Abs(bb.Min.Y), math.Abs(bb.Max.Y))
	cl := path.cosLead()
	rise := path.fraction * path.pitch
	zmin, zmax := math.Inf(1), math.Inf(-1)
	for i := 0; i < n-1; i++ {
		k := math.Max(scales[i], scales[i+1])
		z0 := rise * float64(i) / float64(n-1)
		z1 := rise * float64(i+1) / float64(n-1)
		zmin = math.Min(zmin, z0+k*bb.Min.X/cl)
		zmax = math.Max(zmax, z1+k*bb.Max.X/cl)
	}
	return r3.Box{
		Min: r3.Vec{X: -r, Y: -r, Z: zmin},
		Max: r3.Vec{X: r, Y: r, Z: zmax},
	}
}
