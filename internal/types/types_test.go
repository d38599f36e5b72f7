package types

import (
	"encoding/json"
	"testing"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/tester"
)

func TestProbabilityUnmarshal(t *testing.T) {
	var r Risk
	tester.NoErr(t, json.Unmarshal([]byte(`{"probability": 40}`), &r))
	tester.Eq(t, r.Probability, Probability("40%"))

	tester.NoErr(t, json.Unmarshal([]byte(`{"probability": "60%"}`), &r))
	tester.Eq(t, r.Probability, Probability("60%"))

	tester.NoErr(t, json.Unmarshal([]byte(`{"probability": "high"}`), &r))
	tester.Eq(t, r.Probability, Probability("high"), "strings pass through untouched")

	tester.NoErr(t, json.Unmarshal([]byte(`{"probability": null}`), &r))
	tester.Eq(t, r.Probability, Probability(""))

	tester.NoErr(t, json.Unmarshal([]byte(`{"probability": 66.6}`), &r))
	tester.Eq(t, r.Probability, Probability("66%"), "fractions truncate")
}

func TestProbabilityUnmarshalRejectsOtherTypes(t *testing.T) {
	var r Risk
	err := json.Unmarshal([]byte(`{"probability": [1]}`), &r)
	tester.True(t, err != nil)
}

func TestWBSTasksFlattens(t *testing.T) {
	w := &WBS{Phases: []Phase{
		{ID: "P1", Tasks: []Task{{ID: "T1"}, {ID: "T2"}}},
		{ID: "P2", Tasks: []Task{{ID: "T3"}}},
	}}
	tasks := w.Tasks()
	tester.Eq(t, len(tasks), 3)
	tester.Eq(t, tasks[2].ID, "T3")

	var nilWBS *WBS
	tester.Eq(t, len(nilWBS.Tasks()), 0)
}
