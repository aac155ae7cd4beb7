package matter

import (
	"math"
	"testing"

	"github.com/threadkit/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCompensation(t *testing.T) {
	for _, r := range []float64{5, 18.44, 60} {
		got := PLA.Compensation(r)
		want := r*0.2e-2 + 0.45/2
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("radius %g: got %g, want %g", r, got, want)
		}
	}
	if PETG.Compensation(10) <= PLA.Compensation(10) {
		t.Error("PETG should need more compensation than PLA")
	}
	m := NewViscousMaterial(0, 0)
	if c := m.Compensation(10); c != 0 {
		t.Errorf("rigid material compensation %g", c)
	}
}

func TestScale(t *testing.T) {
	box := must3.Box(r3.Vec{X: 2, Y: 2, Z: 2}, 0)
	s := PLA.Scale(box)
	want := 1 / (1 - 0.2e-2)
	if got := s.Bounds().Max.X; math.Abs(got-want) > 1e-12 {
		t.Errorf("scaled half size %g, want %g", got, want)
	}
	if d := s.Evaluate(r3.Vec{X: want}); math.Abs(d) > 1e-12 {
		t.Errorf("scaled surface distance %g", d)
	}
}

func TestNewViscousMaterialPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for shrink of 1")
		}
	}()
	NewViscousMaterial(1, 0)
}
