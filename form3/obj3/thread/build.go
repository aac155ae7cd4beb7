package thread

// Metrics are the numeric properties of a thread. They are computed
// for every valid spec, Simple or not.
type Metrics struct {
	ApexRadius float64
	RootRadius float64
	Pitch      float64
	Length     float64
	External   bool
	Hand       Hand
	Family     Family
	// MinRadius is the ISO minor radius, zero for other families.
	MinRadius float64
}

// Result is the outcome of Build. It always carries Metrics and carries
// a solid unless the spec asked for metrics only.
type Result struct {
	Metrics  Metrics
	assembly *Assembly
}

// Assembly returns the thread solid, or ErrMetricsOnly when the
// result was built from a Simple spec.
func (r Result) Assembly() (*Assembly, error) {
	if r.assembly == nil {
		return nil, ErrMetricsOnly
	}
	return r.assembly, nil
}

// HasGeometry reports whether Assembly will succeed.
func (r Result) HasGeometry() bool { return r.assembly != nil }

// Build validates spec and builds the thread with DefaultTolerances.
func Build(spec Spec) (Result, error) {
	return BuildWith(spec, DefaultTolerances())
}

// BuildWith validates spec and builds the thread. Distinct loop shapes
// and the two end finishes are worked on concurrently unless
// tol.Sequential is set. No partial result is returned on error.
func BuildWith(spec Spec, tol Tolerances) (Result, error) {
	if err := spec.Validate(); err != nil {
		return Result{}, err
	}
	if err := tol.validate(); err != nil {
		return Result{}, err
	}
	res := Result{Metrics: Metrics{
		ApexRadius: spec.ApexRadius,
		RootRadius: spec.RootRadius,
		Pitch:      spec.Pitch,
		Length:     spec.Length,
		External:   spec.External(),
		Hand:       spec.Hand,
		Family:     spec.Family,
		MinRadius:  spec.MinRadius,
	}}
	if spec.Simple {
		return res, nil
	}

	prof, err := newProfile(spec)
	if err != nil {
		return Result{}, err
	}
	plan, err := planChain(spec, tol)
	if err != nil {
		return Result{}, err
	}
	sh, err := buildShapes(prof, spec, plan, tol)
	if err != nil {
		return Result{}, err
	}
	loops := chainLoops(sh, plan)
	bottom, top := placeTips(sh, spec, loops)
	loops, err = finishLoops(loops, spec, tol)
	if err != nil {
		return Result{}, err
	}
	res.assembly = newAssembly(spec, plan, bottom, loops, top)
	return res, nil
}
