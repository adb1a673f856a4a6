package parity

// MismatchBundle is everything needed to reproduce and debug a parity
// failure: the seed, the full action sequence, both traces at the failing
// step, and the per-field diffs (spec.md §4.10 "the harness emits a
// bundle").
type MismatchBundle struct {
	Seed      uint64
	Actions   []uint8
	StepIndex int
	Fast      Trace
	Ref       Trace
	Diffs     []FieldDiff
}

// Run steps fast and ref through the same seed and action sequence,
// returning the first mismatching bundle, or nil if every step matched
// within tolerance.
func Run(seed uint64, actions []uint8, fast, ref Engine) *MismatchBundle {
	fast.Reset(seed)
	ref.Reset(seed)

	for i, action := range actions {
		ft := fast.Step(action)
		rt := ref.Step(action)
		ft.Step = i
		rt.Step = i

		if diffs := Diff(ft, rt); len(diffs) > 0 {
			return &MismatchBundle{
				Seed:      seed,
				Actions:   actions,
				StepIndex: i,
				Fast:      ft,
				Ref:       rt,
				Diffs:     diffs,
			}
		}
	}
	return nil
}
