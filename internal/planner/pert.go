package planner

import "github.com/olanajibah-ENG/SPM-OF-project-final/internal/types"

// Fallback three-point estimates substituted when the model leaves a/m/b
// out of a task.
const (
	defaultOptimistic = 1
	defaultMostLikely = 2
	defaultPessimist  = 3
)

// ComputePERT returns the expected duration (a + 4m + b) / 6.
func ComputePERT(a, m, b float64) float64 {
	return (a + 4*m + b) / 6.0
}

// EnrichWBS walks every task, substitutes defaults for missing estimates
// (writing them back so the stored document is self-describing) and
// recomputes effort_days from a/m/b. Whatever effort_days the model
// authored is discarded. Re-running is idempotent for unchanged estimates.
// Orderings like a > m are accepted as-is; the result is numerically valid
// even when semantically questionable.
func EnrichWBS(w *types.WBS) {
	if w == nil {
		return
	}
	for pi := range w.Phases {
		tasks := w.Phases[pi].Tasks
		for ti := range tasks {
			t := &tasks[ti]
			if t.A == nil {
				t.A = ptr(defaultOptimistic)
			}
			if t.M == nil {
				t.M = ptr(defaultMostLikely)
			}
			if t.B == nil {
				t.B = ptr(defaultPessimist)
			}
			t.EffortDays = ComputePERT(*t.A, *t.M, *t.B)
		}
	}
}

func ptr(v float64) *float64 { return &v }
