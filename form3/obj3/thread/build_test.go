package thread

import (
	"errors"
	"math"
	"testing"

	"github.com/threadkit/sdf/render"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestScenarioA(t *testing.T) {
	iso := ISO{D: 6, P: 1, Length: 8, Ext: true}
	s, err := iso.Spec()
	if err != nil {
		t.Fatal(err)
	}
	if s.Ends != [2]Finish{Fade, Square} {
		t.Errorf("default ISO ends %v", s.Ends)
	}
	wantMin := (6 - 2*0.625*(0.5/math.Tan(math.Pi/6))) / 2
	if math.Abs(s.MinRadius-wantMin) > 1e-12 {
		t.Errorf("min radius %g, want %g", s.MinRadius, wantMin)
	}
	res, err := Build(s)
	if err != nil {
		t.Fatal(err)
	}
	if res.Metrics.MinRadius != s.MinRadius || !res.Metrics.External || res.Metrics.Family != FamilyISO {
		t.Errorf("bad metrics %+v", res.Metrics)
	}
	a, err := res.Assembly()
	if err != nil {
		t.Fatal(err)
	}
	bb := a.Bounds()
	if math.Abs(bb.Max.Z-8) > 1e-9 {
		t.Errorf("squared top at z=%g", bb.Max.Z)
	}
	// The faded bottom tip ends above z=0, so the axial extent falls
	// short of Length by up to an eighth of a pitch.
	if bb.Min.Z < 0 || bb.Min.Z > s.Pitch/8 {
		t.Errorf("faded bottom at z=%g", bb.Min.Z)
	}
	if ext := bb.Max.Z - bb.Min.Z; ext > s.Length || s.Length-ext > s.Pitch/8 {
		t.Errorf("axial extent %g, want within %g of %g", ext, s.Pitch/8, s.Length)
	}
	if a.Kind(0) != BottomTip {
		t.Errorf("first piece is %v", a.Kind(0))
	}

	// mid flank of the fourth loop, a quarter turn in
	r := (s.RootRadius + s.ApexRadius) / 2
	in := r3.Vec{Y: r, Z: s.Pitch/2 + 3 + 0.25}
	if d := a.Evaluate(in); d >= 0 {
		t.Errorf("point %v inside tooth evaluates to %g", in, d)
	}
	// between teeth, past the apex and on the axis
	for _, p := range []r3.Vec{
		{Y: r, Z: s.Pitch/2 + 3 + 0.75},
		{X: s.ApexRadius + 0.5, Z: 4},
		{Z: 4},
	} {
		if d := a.Evaluate(p); d <= 0 {
			t.Errorf("point %v outside evaluates to %g", p, d)
		}
	}
}

func TestSquareExtent(t *testing.T) {
	for _, length := range []float64{2.5, 6, 7.3} {
		for _, hand := range []Hand{RightHand, LeftHand} {
			s := genericSpec()
			s.Length = length
			s.Hand = hand
			res, err := Build(s)
			if err != nil {
				t.Fatal(err)
			}
			a, _ := res.Assembly()
			bb := a.Bounds()
			if math.Abs(bb.Min.Z) > 1e-9 || math.Abs(bb.Max.Z-length) > 1e-9 {
				t.Errorf("length %g %v: extent [%g,%g]", length, hand, bb.Min.Z, bb.Max.Z)
			}
		}
	}
}

func TestRawExtent(t *testing.T) {
	s := genericSpec()
	s.Ends = [2]Finish{Raw, Raw}
	res, err := Build(s)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := res.Assembly()
	bb := a.Bounds()
	if bb.Min.Z >= 0 || bb.Max.Z <= s.Length {
		t.Errorf("raw ends should overhang, got [%g,%g]", bb.Min.Z, bb.Max.Z)
	}
	if bb.Min.Z < -s.Pitch || bb.Max.Z > s.Length+s.Pitch {
		t.Errorf("raw ends overhang more than a pitch, got [%g,%g]", bb.Min.Z, bb.Max.Z)
	}
}

func TestScenarioC(t *testing.T) {
	s := genericSpec()
	s.Ends = [2]Finish{Chamfer, Chamfer}
	res, err := Build(s)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := res.Assembly()
	bb := a.Bounds()
	if math.Abs(bb.Min.Z) > 1e-9 || math.Abs(bb.Max.Z-s.Length) > 1e-9 {
		t.Errorf("chamfered extent [%g,%g]", bb.Min.Z, bb.Max.Z)
	}
	mid := a.Len() / 2
	full := loopVolume(t, a.pieces[mid])
	for _, i := range []int{0, a.Len() - 1} {
		if v := loopVolume(t, a.pieces[i]); !(v < full) {
			t.Errorf("end loop %d volume %g not below unfinished loop volume %g", i, v, full)
		}
	}
	// the bevel removes the apex corner at the end planes
	corner := r3.Vec{X: s.ApexRadius - 0.05, Z: 0.02}
	if d := a.Evaluate(corner); d <= 0 {
		t.Errorf("bevelled corner still solid: %g", d)
	}
}

func TestChamferShapeInternal(t *testing.T) {
	s := genericSpec()
	s.ApexRadius, s.RootRadius = 5, 6
	s.Ends = [2]Finish{Chamfer, Raw}
	shape, err := chamferShape(s, DefaultTolerances(), nil)
	if err != nil {
		t.Fatal(err)
	}
	inner := 5 - 0.01
	for _, tc := range []struct {
		p      r3.Vec
		inside bool
	}{
		{r3.Vec{X: inner + 0.05, Z: s.Length / 2}, true},
		{r3.Vec{X: inner - 0.05, Z: s.Length / 2}, false},
		{r3.Vec{X: inner + 0.05, Z: 0.01}, false}, // bevelled bottom
		{r3.Vec{X: inner + 0.05, Z: s.Length - 0.01}, true},
		{r3.Vec{Y: 11, Z: 1}, true},
		{r3.Vec{Y: 13, Z: 1}, false},
	} {
		if d := shape.Evaluate(tc.p); (d < 0) != tc.inside {
			t.Errorf("%v: distance %g, inside=%v", tc.p, d, tc.inside)
		}
	}
}

func TestChamferLeavesOtherEnd(t *testing.T) {
	for _, length := range []float64{1.5, 2, 6} {
		s := genericSpec()
		s.Length = length
		s.Ends = [2]Finish{Raw, Raw}
		raw := mustAssembly(t, s)
		s.Ends = [2]Finish{Chamfer, Raw}
		bottom := mustAssembly(t, s)
		s.Ends = [2]Finish{Raw, Chamfer}
		top := mustAssembly(t, s)

		if got, want := bottom.Bounds().Max.Z, raw.Bounds().Max.Z; math.Abs(got-want) > 1e-9 {
			t.Errorf("length %g: chamfered bottom moved raw top from z=%g to z=%g", length, want, got)
		}
		if got, want := top.Bounds().Min.Z, raw.Bounds().Min.Z; math.Abs(got-want) > 1e-9 {
			t.Errorf("length %g: chamfered top moved raw bottom from z=%g to z=%g", length, want, got)
		}
		if math.Abs(bottom.Bounds().Min.Z) > 1e-9 || math.Abs(top.Bounds().Max.Z-length) > 1e-9 {
			t.Errorf("length %g: chamfered ends not flush: bottom %g top %g", length, bottom.Bounds().Min.Z, top.Bounds().Max.Z)
		}
	}

	// a tooth of the last loop, three quarters of a turn in and above z=L
	s := genericSpec()
	s.Length = 2
	s.Ends = [2]Finish{Chamfer, Raw}
	a := mustAssembly(t, s)
	p := r3.Vec{Y: -(s.RootRadius + s.ApexRadius) / 2, Z: -s.Pitch/2 + 2 + 0.75}
	if p.Z <= s.Length {
		t.Fatalf("point %v not past the raw end", p)
	}
	if d := a.Evaluate(p); d >= 0 {
		t.Errorf("raw top tooth at %v cut by bottom chamfer: %g", p, d)
	}
}

func mustAssembly(t *testing.T, s Spec) *Assembly {
	t.Helper()
	res, err := Build(s)
	if err != nil {
		t.Fatal(err)
	}
	a, err := res.Assembly()
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestScenarioD(t *testing.T) {
	iso := ISO{D: 6, P: 1, Length: 8, Ext: true, Simple: true}
	s, err := iso.Spec()
	if err != nil {
		t.Fatal(err)
	}
	res, err := Build(s)
	if err != nil {
		t.Fatal(err)
	}
	if res.HasGeometry() {
		t.Error("simple spec built geometry")
	}
	if _, err := res.Assembly(); !errors.Is(err, ErrMetricsOnly) {
		t.Errorf("want ErrMetricsOnly, got %v", err)
	}
	m := res.Metrics
	if m.ApexRadius != 3 || m.RootRadius != s.MinRadius || m.Pitch != 1 || m.Length != 8 || m.MinRadius != iso.MinRadius() {
		t.Errorf("metrics %+v", m)
	}
}

func TestSequentialMatches(t *testing.T) {
	s := genericSpec()
	s.Ends = [2]Finish{Fade, Chamfer}
	tol := DefaultTolerances()
	par, err := BuildWith(s, tol)
	if err != nil {
		t.Fatal(err)
	}
	tol.Sequential = true
	seq, err := BuildWith(s, tol)
	if err != nil {
		t.Fatal(err)
	}
	pa, _ := par.Assembly()
	sa, _ := seq.Assembly()
	if pa.Len() != sa.Len() || pa.Bounds() != sa.Bounds() {
		t.Fatalf("sequential build differs: %d/%d pieces", pa.Len(), sa.Len())
	}
	for _, p := range []r3.Vec{{X: 5.5, Z: 1}, {X: -5.2, Y: 1, Z: 3.3}, {Y: 6, Z: 5.9}} {
		if pa.Evaluate(p) != sa.Evaluate(p) {
			t.Errorf("%v evaluates differently", p)
		}
	}
}

func loopVolume(t *testing.T, l loop) float64 {
	t.Helper()
	tris, err := render.RenderAll(render.NewMarchingCubesRenderer(l.sdf, 120))
	if err != nil {
		t.Fatal(err)
	}
	return render.Volume(tris)
}
