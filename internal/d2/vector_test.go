package d2

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestSet(t *testing.T) {
	s := Set{{X: 1, Y: -2}, {X: -3, Y: 4}, {X: 0.5, Y: 0}}
	if got := s.Min(); got != (r2.Vec{X: -3, Y: -2}) {
		t.Errorf("min %v", got)
	}
	if got := s.Max(); got != (r2.Vec{X: 1, Y: 4}) {
		t.Errorf("max %v", got)
	}
	if got := AbsElem(r2.Vec{X: -1, Y: 2}); got != (r2.Vec{X: 1, Y: 2}) {
		t.Errorf("abs %v", got)
	}
	if !EqualWithin(r2.Vec{X: 1}, r2.Vec{X: 1.05}, 0.1) || EqualWithin(r2.Vec{}, r2.Vec{Y: 0.2}, 0.1) {
		t.Error("EqualWithin")
	}
}
