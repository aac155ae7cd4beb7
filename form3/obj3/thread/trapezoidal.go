package thread

import (
	"math"
	"strconv"
	"strings"

	"github.com/threadkit/sdf"
)

// Trapezoidal is a trapezoidal thread form. https://en.wikipedia.org/wiki/Trapezoidal_thread_form
type Trapezoidal struct {
	// D is the thread nominal diameter [mm].
	D float64
	// P is the thread pitch [mm].
	P float64
	// Angle is the included thread angle in degrees.
	Angle float64
	// Length is the axial length of the thread [mm].
	Length float64
	Ext    bool
	Hand   Hand
	// Ends are the bottom and top finishes. Nil means fade, fade.
	Ends []Finish
	// Interference of the thread root into its core. Zero means
	// DefaultInterference, NoInterference means none.
	Interference float64
	Simple       bool

	family Family
}

// Spec derives the canonical thread spec.
func (t Trapezoidal) Spec() (Spec, error) {
	if !(t.D > 0) {
		return Spec{}, paramErr("diameter", t.D, "greater than 0")
	}
	if !(t.P > 0) {
		return Spec{}, paramErr("pitch", t.P, "greater than 0")
	}
	if !(t.Angle >= 0 && t.Angle < 180) {
		return Spec{}, paramErr("thread angle", t.Angle, "in [0,180) degrees")
	}
	ends, err := endsOrDefault(t.Ends, [2]Finish{Fade, Fade})
	if err != nil {
		return Spec{}, err
	}
	shoulder := (t.P / 2) * math.Tan(sdf.DtoR(t.Angle/2))
	s := Spec{
		ApexWidth:    t.P/2 - shoulder,
		RootWidth:    t.P/2 + shoulder,
		Pitch:        t.P,
		Length:       t.Length,
		Interference: interferenceOrDefault(t.Interference),
		Hand:         t.Hand,
		Ends:         ends,
		Simple:       t.Simple,
		Family:       t.family,
	}
	if s.Family == Generic {
		s.Family = FamilyTrapezoidal
	}
	if t.Ext {
		s.ApexRadius = t.D / 2
		s.RootRadius = t.D/2 - t.P/2
	} else {
		s.ApexRadius = t.D/2 - t.P/2
		s.RootRadius = t.D / 2
	}
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// acmePitch maps an ACME nominal size in inches to threads per inch.
var acmePitch = []struct {
	size string
	tpi  float64
}{
	{"1/4", 16},
	{"5/16", 14},
	{"3/8", 12},
	{"1/2", 10},
	{"5/8", 8},
	{"3/4", 6},
	{"7/8", 6},
	{"1", 5},
	{"1 1/4", 5},
	{"1 1/2", 4},
	{"1 3/4", 4},
	{"2", 4},
	{"2 1/2", 3},
	{"3", 2},
}

// AcmeSizes returns the supported ACME nominal sizes.
func AcmeSizes() []string {
	sizes := make([]string, len(acmePitch))
	for i, a := range acmePitch {
		sizes[i] = a.size
	}
	return sizes
}

// Acme returns the 29 degree trapezoidal thread of an imperial size
// such as "1/2" or "1 1/4".
func Acme(size string, length float64, ext bool) (Trapezoidal, error) {
	size = strings.Join(strings.Fields(size), " ")
	for _, a := range acmePitch {
		if a.size != size {
			continue
		}
		d, err := parseInches(size)
		if err != nil {
			return Trapezoidal{}, paramErr("acme size", size, "one of "+strings.Join(AcmeSizes(), ", "))
		}
		return Trapezoidal{
			D:      d * sdf.MillimetresPerInch,
			P:      sdf.MillimetresPerInch / a.tpi,
			Angle:  29,
			Length: length,
			Ext:    ext,
			family: FamilyAcme,
		}, nil
	}
	return Trapezoidal{}, paramErr("acme size", size, "one of "+strings.Join(AcmeSizes(), ", "))
}

// parseInches parses whole, fractional and mixed inch values such as
// "2", "3/8" and "1 1/4".
func parseInches(s string) (float64, error) {
	var v float64
	for _, f := range strings.Fields(s) {
		num, den, ok := strings.Cut(f, "/")
		if !ok {
			n, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return 0, err
			}
			v += n
			continue
		}
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, err
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil {
			return 0, err
		}
		v += n / d
	}
	return v, nil
}

// MetricTrapezoidalSizes returns the supported metric trapezoidal sizes
// in the form "DxP".
func MetricTrapezoidalSizes() []string {
	return append([]string(nil), metricTrapezoidalSizes...)
}

// MetricTrapezoidal returns the 30 degree trapezoidal thread of a
// standard size such as "10x2".
func MetricTrapezoidal(size string, length float64, ext bool) (Trapezoidal, error) {
	size = strings.ToLower(strings.TrimSpace(size))
	known := false
	for _, s := range metricTrapezoidalSizes {
		if s == size {
			known = true
			break
		}
	}
	if !known {
		return Trapezoidal{}, paramErr("metric trapezoidal size", size, "a standard DxP size listed by MetricTrapezoidalSizes")
	}
	ds, ps, _ := strings.Cut(size, "x")
	d, err := strconv.ParseFloat(ds, 64)
	if err != nil {
		return Trapezoidal{}, paramErr("metric trapezoidal size", size, "of the form DxP")
	}
	p, err := strconv.ParseFloat(ps, 64)
	if err != nil {
		return Trapezoidal{}, paramErr("metric trapezoidal size", size, "of the form DxP")
	}
	return Trapezoidal{
		D:      d,
		P:      p,
		Angle:  30,
		Length: length,
		Ext:    ext,
		family: FamilyMetricTrapezoidal,
	}, nil
}

// ISO 2904 diameter/pitch combinations.
var metricTrapezoidalSizes = strings.Fields(`
8x1.5 9x1.5 9x2 10x1.5 10x2 11x2 11x3 12x2 12x3 14x2 14x3 16x2 16x3 16x4
18x2 18x3 18x4 20x2 20x3 20x4 22x3 22x5 22x8 24x3 24x5 24x8 26x3 26x5 26x8
28x3 28x5 28x8 30x3 30x6 30x10 32x3 32x6 32x10 34x3 34x6 34x10 36x3 36x6
36x10 38x3 38x7 38x10 40x3 40x7 40x10 42x3 42x7 42x10 44x3 44x7 44x12 46x3
46x8 46x12 48x3 48x8 48x12 50x3 50x8 50x12 52x3 52x8 52x12 55x3 55x9 55x14
60x3 60x9 60x14 65x4 65x10 65x16 70x4 70x10 70x16 75x4 75x10 75x16 80x4
80x10 80x16 85x4 85x12 85x18 90x4 90x12 90x18 95x4 95x12 95x18 100x4 100x12
100x20 105x4 105x12 105x20 110x4 110x12 110x20 115x6 115x12 115x14 115x22
120x6 120x12 120x14 120x22 125x6 125x12 125x14 125x22 130x6 130x12 130x14
130x22 135x6 135x12 135x14 135x24 140x6 140x12 140x14 140x24 145x6 145x12
145x14 145x24 150x6 150x12 150x16 150x24 155x6 155x12 155x16 155x24 160x6
160x12 160x16 160x28 165x6 165x12 165x16 165x28 170x6 170x12 170x16 170x28
175x8 175x12 175x16 175x28 180x8 180x12 180x18 180x28 185x8 185x12 185x18
185x24 185x32 190x8 190x12 190x18 190x24 190x32 195x8 195x12 195x18 195x24
195x32 200x8 200x12 200x18 200x24 200x32 205x4 210x4 210x8 210x12 210x20
210x24 210x36 215x4 220x4 220x8 220x12 220x20 220x24 220x36 230x4 230x8
230x12 230x20 230x24 230x36 235x4 240x4 240x8 240x12 240x20 240x22 240x24
240x36 250x4 250x12 250x22 250x24 250x40 260x4 260x12 260x20 260x22 260x24
260x40 270x12 270x24 270x40 275x4 280x4 280x12 280x24 280x40 290x4 290x12
290x24 290x44 295x4 300x4 300x12 300x24 300x44 310x5 315x5
`)
