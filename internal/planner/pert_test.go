package planner

import (
	"testing"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/tester"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/types"
)

func TestComputePERT(t *testing.T) {
	tester.Eq(t, ComputePERT(1, 2, 3), 2.0)
	tester.Eq(t, ComputePERT(2, 4, 12), 5.0)
}

func TestEnrichWBSDefaultsMissingEstimates(t *testing.T) {
	w := &types.WBS{Phases: []types.Phase{{
		ID:    "P1",
		Tasks: []types.Task{{ID: "T1", Name: "Design API", EffortDays: 99}},
	}}}

	EnrichWBS(w)

	task := w.Phases[0].Tasks[0]
	tester.Eq(t, *task.A, 1.0)
	tester.Eq(t, *task.M, 2.0)
	tester.Eq(t, *task.B, 3.0)
	tester.Eq(t, task.EffortDays, 2.0, "model-authored effort_days must be discarded")
}

func TestEnrichWBSKeepsProvidedEstimates(t *testing.T) {
	a, m, b := 2.0, 4.0, 12.0
	w := &types.WBS{Phases: []types.Phase{{
		Tasks: []types.Task{{Name: "Build backend", A: &a, M: &m, B: &b}},
	}}}

	EnrichWBS(w)
	tester.Eq(t, w.Phases[0].Tasks[0].EffortDays, 5.0)

	// Re-running must not drift.
	EnrichWBS(w)
	tester.Eq(t, w.Phases[0].Tasks[0].EffortDays, 5.0)
}

func TestEnrichWBSNil(t *testing.T) {
	EnrichWBS(nil)
}
