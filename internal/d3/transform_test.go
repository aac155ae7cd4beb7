package d3

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestTransformInverse(t *testing.T) {
	s, c := math.Sincos(0.7)
	rot := NewTransform([]float64{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	m := Transform{}.Translate(r3.Vec{X: 1, Y: -2, Z: 3}).Mul(rot)
	p := r3.Vec{X: 0.3, Y: 2, Z: -1}
	if got := m.Inv().Transform(m.Transform(p)); !EqualWithin(got, p, 1e-12) {
		t.Errorf("round trip %v, want %v", got, p)
	}
	if got := m.ApplyDirection(r3.Vec{X: 1}); !EqualWithin(got, r3.Vec{X: c, Y: s}, 1e-12) {
		t.Errorf("direction %v", got)
	}
	if (Transform{}).Inv() != (Transform{}) {
		t.Error("identity inverse")
	}
}

func TestApplyBox(t *testing.T) {
	b := Box{Min: r3.Vec{X: -1, Y: -1, Z: 0}, Max: r3.Vec{X: 1, Y: 1, Z: 2}}
	quarter := NewTransform([]float64{
		0, -1, 0, 0,
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}).Mul(Transform{}.Translate(r3.Vec{X: 2}))
	got := quarter.ApplyBox(b)
	want := Box{Min: r3.Vec{X: -1, Y: 1, Z: 0}, Max: r3.Vec{X: 1, Y: 3, Z: 2}}
	if !EqualWithin(got.Min, want.Min, 1e-12) || !EqualWithin(got.Max, want.Max, 1e-12) {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if e := b.Extend(Box{Max: r3.Vec{X: 3, Y: 0, Z: 5}}); e.Max != (r3.Vec{X: 3, Y: 1, Z: 5}) || e.Min != b.Min {
		t.Errorf("extend %+v", e)
	}
}
