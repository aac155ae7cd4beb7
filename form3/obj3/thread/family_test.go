package thread

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/threadkit/sdf"
)

func TestISO(t *testing.T) {
	const tol = 1e-12
	h := 0.5 / math.Tan(math.Pi/6)
	minR := 3 - 0.625*h
	for _, ext := range []bool{true, false} {
		s, err := ISO{D: 6, P: 1, Length: 10, Ext: ext}.Spec()
		if err != nil {
			t.Fatal(err)
		}
		if s.External() != ext || s.Family != FamilyISO {
			t.Errorf("ext=%v: got external=%v family=%v", ext, s.External(), s.Family)
		}
		if s.Interference != DefaultInterference {
			t.Errorf("ext=%v: interference %g", ext, s.Interference)
		}
		want := [4]float64{3, 1.0 / 8, minR, 3.0 / 4}
		if !ext {
			want = [4]float64{minR, 1.0 / 4, 3, 7.0 / 8}
		}
		got := [4]float64{s.ApexRadius, s.ApexWidth, s.RootRadius, s.RootWidth}
		for i := range want {
			if math.Abs(got[i]-want[i]) > tol {
				t.Errorf("ext=%v: got %v, want %v", ext, got, want)
				break
			}
		}
	}

	_, err := ISO{D: 6, P: 1, Length: 10, Ends: []Finish{Fade}}.Spec()
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("single end finish: %v", err)
	}
	_, err = ISO{D: 6, P: 1, Length: 10, Taper: 0.1}.Spec()
	var perr *ParameterError
	if !errors.As(err, &perr) || perr.Field != "taper" {
		t.Errorf("taper: %v", err)
	}
}

func TestISOByName(t *testing.T) {
	iso, err := ISOByName("M6x1", 8, true)
	if err != nil {
		t.Fatal(err)
	}
	if iso.D != 6 || iso.P != 1 || iso.Length != 8 || !iso.Ext {
		t.Errorf("M6x1: %+v", iso)
	}
	iso, err = ISOByName("unc_1/4", 8, false)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(iso.D/2-3.175) > 1e-12 || math.Abs(iso.P-25.4/20) > 1e-12 {
		t.Errorf("unc_1/4: %+v", iso)
	}
	if _, err := iso.Spec(); err != nil {
		t.Errorf("unc_1/4 spec: %v", err)
	}

	iso, err = ISOByName("npt_1/2", 8, true)
	if err != nil {
		t.Fatal(err)
	}
	_, err = iso.Spec()
	var perr *ParameterError
	if !errors.As(err, &perr) || perr.Field != "taper" {
		t.Errorf("tapered pipe thread: %v", err)
	}

	_, err = ISOByName("M7x1", 8, true)
	if !errors.As(err, &perr) || perr.Field != "thread name" {
		t.Errorf("unknown name: %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Error("names not sorted")
	}
	for _, name := range names {
		p, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if p.Name != name || !(p.Radius > 0) || !(p.Pitch > 0) || !(p.HexFlat2Flat > p.Radius) {
			t.Errorf("bad entry %+v", p)
		}
	}
}

func TestAcme(t *testing.T) {
	tr, err := Acme(" 1  1/4", 20, true)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(tr.D-31.75) > 1e-12 || math.Abs(tr.P-5.08) > 1e-12 || tr.Angle != 29 {
		t.Errorf("1 1/4 acme: %+v", tr)
	}
	s, err := tr.Spec()
	if err != nil {
		t.Fatal(err)
	}
	if s.Family != FamilyAcme || s.Ends != [2]Finish{Fade, Fade} {
		t.Errorf("family %v ends %v", s.Family, s.Ends)
	}
	shoulder := 2.54 * math.Tan(sdf.DtoR(14.5))
	if math.Abs(s.ApexWidth-(2.54-shoulder)) > 1e-12 || math.Abs(s.RootWidth-(2.54+shoulder)) > 1e-12 {
		t.Errorf("widths %g %g", s.ApexWidth, s.RootWidth)
	}
	if math.Abs(s.ApexRadius-15.875) > 1e-12 || math.Abs(s.RootRadius-(15.875-2.54)) > 1e-12 {
		t.Errorf("radii %g %g", s.ApexRadius, s.RootRadius)
	}

	if _, err := Acme("1 1/8", 20, true); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("unknown acme size: %v", err)
	}
	if got := len(AcmeSizes()); got != len(acmePitch) {
		t.Errorf("%d acme sizes", got)
	}
}

func TestMetricTrapezoidal(t *testing.T) {
	tr, err := MetricTrapezoidal("10X2", 12, false)
	if err != nil {
		t.Fatal(err)
	}
	if tr.D != 10 || tr.P != 2 || tr.Angle != 30 || tr.Ext {
		t.Errorf("10x2: %+v", tr)
	}
	s, err := tr.Spec()
	if err != nil {
		t.Fatal(err)
	}
	if s.Family != FamilyMetricTrapezoidal || s.External() {
		t.Errorf("family %v external %v", s.Family, s.External())
	}
	if s.ApexRadius != 4 || s.RootRadius != 5 {
		t.Errorf("radii %g %g", s.ApexRadius, s.RootRadius)
	}
	for _, bad := range []string{"10x3", "10", "x2", ""} {
		if _, err := MetricTrapezoidal(bad, 12, true); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%q: %v", bad, err)
		}
	}

	_, err = Trapezoidal{D: 10, P: 2, Angle: 180, Length: 5}.Spec()
	var perr *ParameterError
	if !errors.As(err, &perr) || perr.Field != "thread angle" {
		t.Errorf("flat angle: %v", err)
	}
	s, err = Trapezoidal{D: 10, P: 2, Angle: 30, Length: 5, Ext: true}.Spec()
	if err != nil || s.Family != FamilyTrapezoidal {
		t.Errorf("plain trapezoidal: %v %v", s.Family, err)
	}
}

func TestPlasticBottle(t *testing.T) {
	s, err := PlasticBottle{Size: "M38SP444", Ext: true}.Spec()
	if err != nil {
		t.Fatal(err)
	}
	pitch := 25.4 / 6
	if math.Abs(s.Pitch-pitch) > 1e-12 || math.Abs(s.Length-1.875*pitch) > 1e-12 {
		t.Errorf("pitch %g length %g", s.Pitch, s.Length)
	}
	if math.Abs(s.ApexRadius-18.44) > 1e-12 || math.Abs(s.RootRadius-(18.44-1.19)) > 1e-12 {
		t.Errorf("radii %g %g", s.ApexRadius, s.RootRadius)
	}
	sh0 := 1.19 * math.Tan(sdf.DtoR(10))
	sh1 := 1.19 * math.Tan(sdf.DtoR(45))
	aw := 2.39 - sh0 - sh1
	if math.Abs(s.ApexWidth-aw) > 1e-12 || s.RootWidth != 2.39 {
		t.Errorf("widths %g %g", s.ApexWidth, s.RootWidth)
	}
	if off := sh0 + aw/2 - 2.39/2; math.Abs(s.ApexOffset-off) > 1e-12 {
		t.Errorf("apex offset %g, want %g", s.ApexOffset, off)
	}
	if s.Ends != [2]Finish{Fade, Fade} || s.Family != FamilyPlasticBottle {
		t.Errorf("ends %v family %v", s.Ends, s.Family)
	}

	in, err := PlasticBottle{Size: "M38SP444", Compensation: 0.1}.Spec()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(in.RootRadius-(37.49/2+0.1)) > 1e-12 || in.ApexOffset != -s.ApexOffset {
		t.Errorf("internal: root %g offset %g", in.RootRadius, in.ApexOffset)
	}

	// L style flanks are symmetric
	l, err := PlasticBottle{Size: "L28SP410", Ext: true}.Spec()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(l.ApexOffset) > 1e-12 {
		t.Errorf("L style apex offset %g", l.ApexOffset)
	}

	for _, tc := range []struct {
		size, field string
	}{
		{"M38SP999", "finish"},
		{"M39SP444", "diameter"},
		{"X38SP444", "size"},
		{"M38SP444x", "size"},
		{"m38sp444", "size"},
	} {
		_, err := PlasticBottle{Size: tc.size}.Spec()
		var perr *ParameterError
		if !errors.As(err, &perr) || perr.Field != tc.field {
			t.Errorf("%s: got %v, want field %q", tc.size, err, tc.field)
		}
	}
	_, err = PlasticBottle{Size: "M38SP444", Compensation: math.NaN()}.Spec()
	var perr *ParameterError
	if !errors.As(err, &perr) || perr.Field != "manufacturing compensation" {
		t.Errorf("NaN compensation: %v", err)
	}
}

func TestFamilyInterference(t *testing.T) {
	for _, tc := range []struct {
		name string
		spec func(interference float64) (Spec, error)
	}{
		{"iso", func(v float64) (Spec, error) {
			return ISO{D: 6, P: 1, Length: 8, Ext: true, Interference: v}.Spec()
		}},
		{"trapezoidal", func(v float64) (Spec, error) {
			tr, err := MetricTrapezoidal("12x3", 10, true)
			tr.Interference = v
			if err != nil {
				return Spec{}, err
			}
			return tr.Spec()
		}},
		{"bottle", func(v float64) (Spec, error) {
			return PlasticBottle{Size: "M38SP444", Ext: true, Interference: v}.Spec()
		}},
	} {
		for _, c := range []struct{ in, want float64 }{
			{0, DefaultInterference},
			{NoInterference, 0},
			{0.05, 0.05},
		} {
			s, err := tc.spec(c.in)
			if err != nil {
				t.Errorf("%s interference %g: %v", tc.name, c.in, err)
				continue
			}
			if s.Interference != c.want {
				t.Errorf("%s interference %g: got %g, want %g", tc.name, c.in, s.Interference, c.want)
			}
		}
		if _, err := tc.spec(-0.5); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s negative interference: %v", tc.name, err)
		}
	}

	// zero overlap still builds
	s, err := PlasticBottle{Size: "M38SP444", Ext: true, Interference: NoInterference}.Spec()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Build(s); err != nil {
		t.Errorf("zero interference bottle: %v", err)
	}
}

func TestPlasticBottleSizes(t *testing.T) {
	sizes := PlasticBottleSizes()
	has := make(map[string]bool, len(sizes))
	for _, s := range sizes {
		has[s] = true
	}
	for _, s := range []string{"M38SP444", "L38SP444", "L13SP425", "M120SP400", "M24SP200", "L28SP200"} {
		if !has[s] {
			t.Errorf("missing %s", s)
		}
	}
	if has["M38SP200"] {
		t.Error("M38SP200 is not a standard size")
	}
	for _, s := range sizes {
		if _, err := (PlasticBottle{Size: s, Ext: true}).Spec(); err != nil {
			t.Errorf("%s: %v", s, err)
		}
	}
}
