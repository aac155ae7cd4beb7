package thread

import (
	"errors"
	"math"

	"github.com/threadkit/sdf"
	"github.com/threadkit/sdf/form2"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// endScan is the number of loops nearest an end that finishing inspects.
const endScan = 3

// endAction is what finishing does to one loop.
type endAction struct {
	drop      bool
	clipBelow bool // cut at z=0
	clipAbove bool // cut at z=Length
	chamfer   bool
}

func (a endAction) merge(b endAction) endAction {
	return endAction{
		drop:      a.drop || b.drop,
		clipBelow: a.clipBelow || b.clipBelow,
		clipAbove: a.clipAbove || b.clipAbove,
		chamfer:   a.chamfer || b.chamfer,
	}
}

// endPlan maps loop indices to the actions one end requests.
type endPlan map[int]endAction

// planEnd decides the actions for the bottom (top=false) or top end.
// Only square and chamfer ends act on the chained loops, fade tips are
// added separately.
func planEnd(loops []loop, spec Spec, top bool) endPlan {
	plan := make(endPlan)
	finish := spec.Ends[0]
	if top {
		finish = spec.Ends[1]
	}
	if finish != Square && finish != Chamfer {
		return plan
	}
	n := len(loops)
	for j := 0; j < endScan && j < n; j++ {
		i := j
		if top {
			i = n - 1 - j
		}
		bb := loops[i].sdf.Bounds()
		var outside, inside bool
		if top {
			outside = bb.Min.Z >= spec.Length
			inside = bb.Max.Z <= spec.Length
		} else {
			outside = bb.Max.Z <= 0
			inside = bb.Min.Z >= 0
		}
		switch {
		case outside:
			plan[i] = endAction{drop: true}
		case finish == Chamfer:
			plan[i] = endAction{chamfer: true}
		case inside:
			// Loops further in are inside too.
			return plan
		case top:
			plan[i] = endAction{clipAbove: true}
		default:
			plan[i] = endAction{clipBelow: true}
		}
	}
	return plan
}

// finishLoops plans both ends concurrently and applies the merged plan.
// The input loops are not modified.
func finishLoops(loops []loop, spec Spec, tol Tolerances) ([]loop, error) {
	var plans [2]endPlan
	var chamfer sdf.SDF3
	var g errgroup.Group
	if tol.Sequential {
		g.SetLimit(1)
	}
	for end := range plans {
		g.Go(func() error {
			plans[end] = planEnd(loops, spec, end == 1)
			return nil
		})
	}
	if spec.Ends[0] == Chamfer || spec.Ends[1] == Chamfer {
		g.Go(func() (err error) {
			chamfer, err = chamferShape(spec, tol, loops)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]loop, 0, len(loops))
	for i, l := range loops {
		a := plans[0][i].merge(plans[1][i])
		if a.drop {
			continue
		}
		if a.clipBelow {
			l.sdf = sdf.Cut3D(l.sdf, r3.Vec{}, r3.Vec{Z: 1})
		}
		if a.clipAbove {
			l.sdf = sdf.Cut3D(l.sdf, r3.Vec{Z: spec.Length}, r3.Vec{Z: -1})
		}
		if a.chamfer {
			l.sdf = sdf.Intersect3D(l.sdf, chamfer)
		}
		if sdf.IsEmpty(l.sdf) {
			continue
		}
		out = append(out, l)
	}
	if len(out) == 0 {
		return nil, geomErr("finish", errors.New("end finishes removed every loop"))
	}
	return out, nil
}

// chamferShape returns the solid chamfered loops are intersected with:
// a disc (external) or annulus (internal) with the apex side edge
// bevelled at chamfered ends. It is flush with the plane of a chamfered
// end and reaches past the loops at an end that is not chamfered, so
// a short thread's other end is left alone.
func chamferShape(spec Spec, tol Tolerances, loops []loop) (sdf.SDF3, error) {
	inner := math.Min(spec.ApexRadius, spec.RootRadius)
	outer := math.Max(spec.ApexRadius, spec.RootRadius) + tol.ChamferClearance
	if !spec.External() {
		inner -= tol.InternalChamferShrink
	}
	bevel := math.Min((outer-inner)/2, spec.Length/3)
	bottom := spec.Ends[0] == Chamfer
	top := spec.Ends[1] == Chamfer

	z0, z1 := 0.0, spec.Length
	for _, l := range loops {
		bb := l.sdf.Bounds()
		if !bottom {
			z0 = math.Min(z0, bb.Min.Z-spec.Pitch)
		}
		if !top {
			z1 = math.Max(z1, bb.Max.Z+spec.Pitch)
		}
	}

	p := form2.NewPolygon()
	if spec.External() {
		p.Add(-outer, z0)
		v := p.Add(outer, z0)
		if bottom {
			v.Chamfer(bevel)
		}
		v = p.Add(outer, z1)
		if top {
			v.Chamfer(bevel)
		}
		p.Add(-outer, z1)
	} else {
		v := p.Add(inner, z0)
		if bottom {
			v.Chamfer(bevel)
		}
		p.Add(2*outer, z0)
		p.Add(2*outer, z1)
		v = p.Add(inner, z1)
		if top {
			v.Chamfer(bevel)
		}
	}
	s, err := form2.Polygon(p.Vertices())
	if err != nil {
		return nil, geomErr("finish", err)
	}
	return sdf.Revolve3D(s, 2*math.Pi), nil
}
