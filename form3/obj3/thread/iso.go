package thread

import (
	"math"
)

// ISO is a standardized 60 degree thread.
// Pitch is usually the number following the diameter
// i.e: for M16x2 the pitch is 2mm
type ISO struct {
	// D is the thread nominal (major) diameter [mm].
	D float64
	// P is the thread pitch [mm].
	P float64
	// Length is the axial length of the thread [mm].
	Length float64
	// Is external or internal thread. Ext set to true means external thread.
	Ext  bool
	Hand Hand
	// Ends are the bottom and top finishes. Nil means fade, square.
	Ends []Finish
	// Interference of the thread root into its core. Zero means
	// DefaultInterference, NoInterference means none.
	Interference float64
	// Taper is carried through to the Spec where any non-zero value is rejected.
	Taper  float64
	Simple bool
}

// MinRadius returns the ISO minor radius,
// (D - 2*(5/8)*h)/2 where h is the height of the fundamental triangle.
func (iso ISO) MinRadius() float64 {
	h := (iso.P / 2) / math.Tan(30*math.Pi/180)
	return (iso.D - 2*(5.0/8.0)*h) / 2
}

// Spec derives the canonical thread spec.
func (iso ISO) Spec() (Spec, error) {
	if !(iso.D > 0) {
		return Spec{}, paramErr("major diameter", iso.D, "greater than 0")
	}
	if !(iso.P > 0) {
		return Spec{}, paramErr("pitch", iso.P, "greater than 0")
	}
	ends, err := endsOrDefault(iso.Ends, [2]Finish{Fade, Square})
	if err != nil {
		return Spec{}, err
	}
	minR := iso.MinRadius()
	s := Spec{
		Pitch:        iso.P,
		Length:       iso.Length,
		Interference: interferenceOrDefault(iso.Interference),
		Hand:         iso.Hand,
		Ends:         ends,
		Taper:        iso.Taper,
		Simple:       iso.Simple,
		Family:       FamilyISO,
		MinRadius:    minR,
	}
	if iso.Ext {
		s.ApexRadius = iso.D / 2
		s.ApexWidth = iso.P / 8
		s.RootRadius = minR
		s.RootWidth = 3 * iso.P / 4
	} else {
		s.ApexRadius = minR
		s.ApexWidth = iso.P / 4
		s.RootRadius = iso.D / 2
		s.RootWidth = 7 * iso.P / 8
	}
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// ISOByName returns the ISO thread for a named entry of the thread
// database, e.g. "M6x1" or "unc_1/4". Unified threads share the ISO
// basic profile. Pipe threads are tapered and fail in Spec.
func ISOByName(name string, length float64, ext bool) (ISO, error) {
	p, err := Lookup(name)
	if err != nil {
		return ISO{}, err
	}
	return ISO{
		D:      2 * p.Radius,
		P:      p.Pitch,
		Length: length,
		Ext:    ext,
		Taper:  p.Taper,
	}, nil
}

func endsOrDefault(ends []Finish, def [2]Finish) ([2]Finish, error) {
	switch len(ends) {
	case 0:
		return def, nil
	case 2:
		return [2]Finish{ends[0], ends[1]}, nil
	}
	return def, paramErr("end finishes", ends, "two finishes, bottom then top")
}

func interferenceOrDefault(v float64) float64 {
	switch v {
	case 0:
		return DefaultInterference
	case NoInterference:
		return 0
	}
	return v
}
