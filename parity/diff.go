package parity

import (
	"math"
	"strconv"
)

const (
	absTol = 1e-6
	relTol = 1e-5

	cumulativeAbsTol = 1e-4
)

// FieldDiff names one mismatching field and its two values.
type FieldDiff struct {
	Field string
	Fast  float64
	Ref   float64
}

func closeEnough(a, b, tol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	d := math.Abs(a - b)
	if d <= tol {
		return true
	}
	return d <= relTol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func cumulativeClose(a, b float64) bool {
	return math.Abs(a-b) <= cumulativeAbsTol*math.Max(1, math.Abs(a))
}

// Diff compares two traces for the same step and returns every field that
// falls outside its tolerance (spec.md §4.10). An empty result means the
// traces match.
func Diff(fast, ref Trace) []FieldDiff {
	var diffs []FieldDiff

	if fast.Terminated != ref.Terminated {
		diffs = append(diffs, FieldDiff{"terminated", b2f(fast.Terminated), b2f(ref.Terminated)})
	}
	if fast.Truncated != ref.Truncated {
		diffs = append(diffs, FieldDiff{"truncated", b2f(fast.Truncated), b2f(ref.Truncated)})
	}
	if (fast.Terminated || fast.Truncated) != (ref.Terminated || ref.Truncated) {
		diffs = append(diffs, FieldDiff{"done", b2f(fast.Terminated || fast.Truncated), b2f(ref.Terminated || ref.Truncated)})
	}
	if fast.Dt != ref.Dt {
		diffs = append(diffs, FieldDiff{"dt", float64(fast.Dt), float64(ref.Dt)})
	}
	if fast.Action != ref.Action {
		diffs = append(diffs, FieldDiff{"action", float64(fast.Action), float64(ref.Action)})
	}

	if !closeEnough(float64(fast.Reward), float64(ref.Reward), absTol) {
		diffs = append(diffs, FieldDiff{"reward", float64(fast.Reward), float64(ref.Reward)})
	}

	for i := range fast.Obs {
		a, b := float64(fast.Obs[i]), float64(ref.Obs[i])
		if !closeEnough(a, b, absTol) {
			diffs = append(diffs, FieldDiff{obsFieldName(i), a, b})
		}
	}

	diffs = append(diffs, diffMetrics(fast.Metrics, ref.Metrics)...)

	return diffs
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func obsFieldName(i int) string {
	return "obs[" + strconv.Itoa(i) + "]"
}
