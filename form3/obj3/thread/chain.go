package thread

import (
	"fmt"
	"math"

	"github.com/threadkit/sdf"
	"github.com/threadkit/sdf/internal/d3"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// LoopKind tells apart the pieces of an Assembly.
type LoopKind int

const (
	FullLoop LoopKind = iota
	PartialLoop
	BottomTip
	TopTip
)

func (k LoopKind) String() string {
	switch k {
	case FullLoop:
		return "loop"
	case PartialLoop:
		return "partial"
	case BottomTip:
		return "bottom tip"
	case TopTip:
		return "top tip"
	}
	return "LoopKind(?)"
}

// chainPlan lays the loops out along the thread axis.
type chainPlan struct {
	turns   float64 // turns between the fade tips
	full    int     // number of full loops
	partial float64 // fraction of the last loop, 0 for none
	shift   float64 // axial position of the first loop's start
	tip     float64 // fade tip fraction
}

func planChain(spec Spec, tol Tolerances) (chainPlan, error) {
	fades := 0
	for _, f := range spec.Ends {
		if f == Fade {
			fades++
		}
	}
	cylindrical := spec.Length + spec.Pitch*float64(1-fades)
	plan := chainPlan{
		turns: cylindrical / spec.Pitch,
		shift: -spec.Pitch / 2,
		tip:   math.Min(spec.Pitch/4, spec.Length/2) / spec.Pitch,
	}
	if spec.Ends[0] == Fade {
		plan.shift = spec.Pitch / 2
	}
	if !(plan.turns > 0) {
		return chainPlan{}, geomErr("chain", fmt.Errorf("length %g leaves %g turns between the fade tips", spec.Length, plan.turns))
	}
	full := math.Floor(plan.turns)
	rem := plan.turns - full
	switch {
	case rem < tol.MinLoopFraction:
		rem = 0
	case rem > 1-tol.MinLoopFraction:
		full++
		rem = 0
	}
	plan.full = int(full)
	plan.partial = rem
	if plan.full == 0 && plan.partial == 0 {
		return chainPlan{}, geomErr("chain", fmt.Errorf("%g turns is too short to build", plan.turns))
	}
	return plan, nil
}

// shapes are the distinct loops of a thread before they are placed.
type shapes struct {
	full, partial, bottom, top loop
}

// buildShapes sweeps each distinct loop shape once. The shapes only
// share the read only profile so they are built concurrently.
func buildShapes(prof *profile, spec Spec, plan chainPlan, tol Tolerances) (shapes, error) {
	var sh shapes
	var g errgroup.Group
	if tol.Sequential {
		g.SetLimit(1)
	}
	build := func(dst *loop, kind LoopKind, fraction float64, scales []float64) {
		g.Go(func() error {
			l, err := newLoop(prof, spec, fraction, scales, tol.Samples)
			l.kind = kind
			*dst = l
			return err
		})
	}
	if plan.full > 0 {
		build(&sh.full, FullLoop, 1, nil)
	}
	if plan.partial > 0 {
		build(&sh.partial, PartialLoop, plan.partial, nil)
	}
	if spec.Ends[0] == Fade {
		build(&sh.bottom, BottomTip, plan.tip, fadeScales(tol.Samples, true))
	}
	if spec.Ends[1] == Fade {
		build(&sh.top, TopTip, plan.tip, fadeScales(tol.Samples, false))
	}
	return sh, g.Wait()
}

// chainLoops places the loops end to start, the first one raised
// by the plan's axial shift.
func chainLoops(sh shapes, plan chainPlan) []loop {
	loops := make([]loop, 0, plan.full+1)
	for i := 0; i < plan.full; i++ {
		loops = append(loops, sh.full)
	}
	if plan.partial > 0 {
		loops = append(loops, sh.partial)
	}
	loops[0] = loops[0].place(sdf.Translate3D(r3.Vec{Z: plan.shift}))
	for i := 1; i < len(loops); i++ {
		loops[i] = loops[i].place(joint(loops[i-1].end, loops[i].start))
	}
	return loops
}

// placeTips joins the fade tips to the ends of the chained loops.
// A bottom tip ends where the first loop starts.
func placeTips(sh shapes, spec Spec, loops []loop) (bottom, top *loop) {
	if spec.Ends[0] == Fade {
		t := sh.bottom.place(joint(loops[0].start, sh.bottom.end))
		bottom = &t
	}
	if spec.Ends[1] == Fade {
		last := loops[len(loops)-1]
		t := sh.top.place(joint(last.end, sh.top.start))
		top = &t
	}
	return bottom, top
}

// Assembly is a finished thread: chained loops with at most one fade tip
// at each end. It is an SDF3.
type Assembly struct {
	spec   Spec
	plan   chainPlan
	pieces []loop // bottom to top
	boxes  []r3.Box
	bb     r3.Box
}

func newAssembly(spec Spec, plan chainPlan, bottom *loop, loops []loop, top *loop) *Assembly {
	a := &Assembly{spec: spec, plan: plan}
	if bottom != nil {
		a.pieces = append(a.pieces, *bottom)
	}
	a.pieces = append(a.pieces, loops...)
	if top != nil {
		a.pieces = append(a.pieces, *top)
	}
	a.boxes = make([]r3.Box, len(a.pieces))
	for i, l := range a.pieces {
		a.boxes[i] = l.sdf.Bounds()
		if i == 0 {
			a.bb = a.boxes[0]
			continue
		}
		a.bb = r3.Box(d3.Box(a.bb).Extend(d3.Box(a.boxes[i])))
	}
	return a
}

// Evaluate returns the minimum distance to the thread. Pieces whose
// bounding box is farther than the best distance found are skipped.
func (a *Assembly) Evaluate(p r3.Vec) float64 {
	d := math.MaxFloat64
	for i, l := range a.pieces {
		if boxDistance(a.boxes[i], p) >= d {
			continue
		}
		d = math.Min(d, l.sdf.Evaluate(p))
	}
	return d
}

// Bounds returns the bounding box of the thread.
func (a *Assembly) Bounds() r3.Box {
	return a.bb
}

// Spec returns the spec the thread was built from.
func (a *Assembly) Spec() Spec { return a.spec }

// Len returns the number of pieces, tips included.
func (a *Assembly) Len() int { return len(a.pieces) }

// Kind returns what the i'th piece from the bottom is.
func (a *Assembly) Kind(i int) LoopKind { return a.pieces[i].kind }

// Frames returns the start and end frames of the i'th piece.
func (a *Assembly) Frames(i int) (start, end Frame) {
	return a.pieces[i].start, a.pieces[i].end
}

// Fraction returns the fraction of a turn the i'th piece spans.
func (a *Assembly) Fraction(i int) float64 { return a.pieces[i].fraction }

// Scales returns the cross section scale factors of the i'th piece,
// one per sample from its start to its end.
func (a *Assembly) Scales(i int) []float64 {
	return append([]float64(nil), a.pieces[i].scales...)
}

// Turns returns the number of turns between the fade tips.
func (a *Assembly) Turns() float64 { return a.plan.turns }

// FullLoops returns the number of full loops chained before end finishing.
func (a *Assembly) FullLoops() int { return a.plan.full }

// PartialFraction returns the fraction of the partial loop, or zero
// when the turns divide evenly.
func (a *Assembly) PartialFraction() float64 { return a.plan.partial }

func boxDistance(b r3.Box, p r3.Vec) float64 {
	dx := math.Max(math.Max(b.Min.X-p.X, p.X-b.Max.X), 0)
	dy := math.Max(math.Max(b.Min.Y-p.Y, p.Y-b.Max.Y), 0)
	dz := math.Max(math.Max(b.Min.Z-p.Z, p.Z-b.Max.Z), 0)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
