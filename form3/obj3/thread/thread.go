package thread

import (
	"math"
	"strconv"
	"strings"
)

// Threads
// A thread is built from a trapezoidal cross section swept along a helix
// whose radius is the thread's root radius. The sweep is split into loops
// of at most one turn each which are chained end to start. The ends of the
// thread can then be faded, squared off or chamfered.
//
// The cross section lives in a plane containing the thread axis. Its X axis
// runs along the thread axis and its Y axis runs radially, with the root line
// at Y=0 and the apex at Y=ApexRadius-RootRadius.

// DefaultInterference is the default radial overlap of the thread root into
// the core it is fused to.
const DefaultInterference = 0.2

// NoInterference asks the family types (ISO, Trapezoidal, PlasticBottle),
// whose zero Interference means DefaultInterference, for a profile with
// no overlap at all.
const NoInterference = -1.0

// Hand is the twist direction of a thread.
type Hand int

const (
	RightHand Hand = iota
	LeftHand
)

func (h Hand) String() string {
	switch h {
	case RightHand:
		return "right"
	case LeftHand:
		return "left"
	}
	return "Hand(" + strconv.Itoa(int(h)) + ")"
}

func (h Hand) sign() float64 {
	if h == LeftHand {
		return -1
	}
	return 1
}

const handLegal = `"right" or "left"`

// ParseHand converts "right" or "left" to a Hand.
func ParseHand(s string) (Hand, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return RightHand, nil
	case "left":
		return LeftHand, nil
	}
	return 0, paramErr("hand", s, handLegal)
}

// Finish is the treatment applied to one end of a thread.
type Finish int

const (
	// Raw leaves the end untouched. The thread may extend past z=0 or z=Length.
	Raw Finish = iota
	// Fade tapers the tooth to almost nothing over a quarter turn.
	Fade
	// Square cuts the thread flush with the end plane.
	Square
	// Chamfer bevels the apex side of the thread at the end plane.
	Chamfer
)

func (f Finish) String() string {
	switch f {
	case Raw:
		return "raw"
	case Fade:
		return "fade"
	case Square:
		return "square"
	case Chamfer:
		return "chamfer"
	}
	return "Finish(" + strconv.Itoa(int(f)) + ")"
}

const finishLegal = `one of "raw", "square", "fade" or "chamfer"`

// ParseFinish converts an end finish token to a Finish.
func ParseFinish(s string) (Finish, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw":
		return Raw, nil
	case "fade":
		return Fade, nil
	case "square":
		return Square, nil
	case "chamfer":
		return Chamfer, nil
	}
	return 0, paramErr("end finish", s, finishLegal)
}

// Family names the thread standard a Spec was derived from.
type Family int

const (
	Generic Family = iota
	FamilyISO
	FamilyTrapezoidal
	FamilyAcme
	FamilyMetricTrapezoidal
	FamilyPlasticBottle
)

func (f Family) String() string {
	switch f {
	case Generic:
		return "generic"
	case FamilyISO:
		return "iso"
	case FamilyTrapezoidal:
		return "trapezoidal"
	case FamilyAcme:
		return "acme"
	case FamilyMetricTrapezoidal:
		return "metric trapezoidal"
	case FamilyPlasticBottle:
		return "plastic bottle"
	}
	return "Family(" + strconv.Itoa(int(f)) + ")"
}

// Spec is the canonical description of a thread. All lengths are in
// the same unit, usually millimetres.
type Spec struct {
	// ApexRadius is the radius of the thread tip. It is larger than
	// RootRadius for external threads and smaller for internal threads.
	ApexRadius float64
	// ApexWidth is the axial width of the thread tip.
	ApexWidth float64
	// RootRadius is the radius the thread grows out of.
	RootRadius float64
	// RootWidth is the axial width of the thread base.
	RootWidth float64
	// Pitch is the axial advance of one turn.
	Pitch float64
	// Length is the axial length of the finished thread.
	Length float64
	// ApexOffset shifts the apex along the axis for asymmetric flanks.
	ApexOffset float64
	// Interference sinks the base of the profile into the mating core.
	// It is used as is, see DefaultInterference.
	Interference float64
	Hand         Hand
	// Ends are the bottom (z=0) and top (z=Length) finishes.
	Ends [2]Finish
	// Taper must be zero. Tapered threads are not supported.
	Taper float64
	// Simple requests metrics only, no geometry is built.
	Simple bool

	Family Family
	// MinRadius is the ISO minor radius. Zero for other families.
	MinRadius float64
}

// External reports whether the thread apex points away from the axis.
func (s Spec) External() bool { return s.ApexRadius > s.RootRadius }

// Height returns the signed radial height of the profile, apex minus root.
func (s Spec) Height() float64 { return s.ApexRadius - s.RootRadius }

// Validate checks the spec for values the engine cannot build.
func (s Spec) Validate() error {
	if s.Hand != RightHand && s.Hand != LeftHand {
		return paramErr("hand", s.Hand, handLegal)
	}
	for i, f := range s.Ends {
		if f < Raw || f > Chamfer {
			return paramErr(endName(i)+" end finish", f, finishLegal)
		}
	}
	if s.Taper != 0 {
		return paramErr("taper", s.Taper, "0, tapered threads are not supported")
	}
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"pitch", s.Pitch},
		{"length", s.Length},
		{"apex radius", s.ApexRadius},
		{"root radius", s.RootRadius},
		{"apex width", s.ApexWidth},
		{"root width", s.RootWidth},
	} {
		if !(v.val > 0) || math.IsInf(v.val, 1) {
			return paramErr(v.name, v.val, "a finite number greater than 0")
		}
	}
	if s.ApexRadius == s.RootRadius {
		return paramErr("apex radius", s.ApexRadius, "different from the root radius")
	}
	if !(s.Interference >= 0) || math.IsInf(s.Interference, 1) {
		return paramErr("interference", s.Interference, "a finite number >= 0")
	}
	if math.IsNaN(s.ApexOffset) || math.IsInf(s.ApexOffset, 0) {
		return paramErr("apex offset", s.ApexOffset, "a finite number")
	}
	return nil
}

func endName(i int) string {
	if i == 0 {
		return "bottom"
	}
	return "top"
}
