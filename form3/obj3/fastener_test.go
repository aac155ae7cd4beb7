package obj3

import (
	"errors"
	"math"
	"testing"

	"github.com/threadkit/sdf/form3/obj3/thread"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestHexHead(t *testing.T) {
	const r, h = 5, 4
	for _, round := range []HeadRound{RoundNone, RoundTop, RoundBottom, RoundBoth} {
		s, err := HexHead(r, h, round)
		if err != nil {
			t.Fatal(err)
		}
		if d := s.Evaluate(r3.Vec{}); d >= 0 {
			t.Errorf("round %d: center evaluates to %g", round, d)
		}
		// flats are at r*cos(30)
		flat := r * math.Cos(math.Pi/6)
		if d := s.Evaluate(r3.Vec{Y: flat + 0.1}); d <= 0 {
			t.Errorf("round %d: point past flat evaluates to %g", round, d)
		}
		if d := s.Evaluate(r3.Vec{Z: h}); d <= 0 {
			t.Errorf("round %d: point above head evaluates to %g", round, d)
		}
	}
	if _, err := HexHead(5, 4, HeadRound(7)); !errors.Is(err, thread.ErrInvalidParameter) {
		t.Errorf("bad rounding: %v", err)
	}
	if _, err := HexHead(0, 4, RoundNone); !errors.Is(err, thread.ErrInvalidParameter) {
		t.Errorf("zero radius: %v", err)
	}
}

func TestBolt(t *testing.T) {
	k := BoltParms{
		Thread:      "M6x1",
		Style:       NutHex,
		Tolerance:   0.1,
		TotalLength: 12,
		ShankLength: 3,
	}
	s, err := Bolt(k)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := thread.Lookup("M6x1")
	hh := p.HexHeight()
	top := k.TotalLength + hh/2
	if bb := s.Bounds(); math.Abs(bb.Max.Z-top) > 1e-9 {
		t.Errorf("bolt top at %g, want %g", bb.Max.Z, top)
	}
	for _, tc := range []struct {
		p      r3.Vec
		inside bool
	}{
		{r3.Vec{}, true},                    // head
		{r3.Vec{Z: hh/2 + 1}, true},         // shank
		{r3.Vec{Z: top - 1}, true},          // thread core
		{r3.Vec{Z: top + 0.5}, false},       // past the end
		{r3.Vec{X: 3.5, Z: top - 3}, false}, // outside the thread
	} {
		if d := s.Evaluate(tc.p); (d < 0) != tc.inside {
			t.Errorf("%v: distance %g, inside=%v", tc.p, d, tc.inside)
		}
	}

	k.Thread = "npt_1/2"
	if _, err := Bolt(k); !errors.Is(err, thread.ErrInvalidParameter) {
		t.Errorf("tapered bolt: %v", err)
	}
	k.Thread = "M6x1"
	k.ShankLength = k.TotalLength
	if _, err := Bolt(k); !errors.Is(err, thread.ErrInvalidParameter) {
		t.Errorf("all shank bolt: %v", err)
	}
	k.ShankLength = 3
	k.Style = 0
	if _, err := Bolt(k); !errors.Is(err, thread.ErrInvalidParameter) {
		t.Errorf("no head style: %v", err)
	}
}

func TestNut(t *testing.T) {
	for _, style := range []NutStyle{NutHex, NutCircular} {
		s, err := Nut(NutParms{Thread: "M8x1.25", Style: style, Tolerance: 0.1})
		if err != nil {
			t.Fatal(err)
		}
		p, _ := thread.Lookup("M8x1.25")
		for _, tc := range []struct {
			p      r3.Vec
			inside bool
		}{
			{r3.Vec{}, false},                      // bore
			{r3.Vec{X: p.HexRadius() * 0.8}, true}, // body
			{r3.Vec{Z: p.HexHeight()}, false},      // above
		} {
			if d := s.Evaluate(tc.p); (d < 0) != tc.inside {
				t.Errorf("%v %v: distance %g, inside=%v", style, tc.p, d, tc.inside)
			}
		}
	}
	if _, err := Nut(NutParms{Thread: "M9x1", Style: NutHex}); !errors.Is(err, thread.ErrInvalidParameter) {
		t.Errorf("unknown thread: %v", err)
	}
	if NutHex.String() != "hex" || NutStyle(0).String() != "unknown" {
		t.Error("bad nut style names")
	}
}
