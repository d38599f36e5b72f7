package risk

import (
	"testing"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/tester"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/types"
)

func TestMergeRenumbersRuleFirst(t *testing.T) {
	ruleBased := []types.Risk{{ID: 7, Title: "R1"}, {ID: 7, Title: "R2"}}
	aiBased := []types.Risk{{ID: 1, Title: "A1"}}

	out := Merge(ruleBased, aiBased)
	tester.Eq(t, len(out), 3)
	tester.Eq(t, out[0].ID, 1)
	tester.Eq(t, out[1].ID, 2)
	tester.Eq(t, out[2].ID, 3)
	tester.Eq(t, out[0].Title, "R1", "rule-based entries come first")
	tester.Eq(t, out[2].Title, "A1")
}

func TestMergeEmptyInputs(t *testing.T) {
	tester.Eq(t, len(Merge(nil, nil)), 0)

	out := Merge(nil, []types.Risk{{Title: "only"}})
	tester.Eq(t, out[0].ID, 1)
}

func TestTranslateRuleBased(t *testing.T) {
	risks := []types.Risk{
		{Title: "API Delay Risk", Description: "Task depends on external or backend API readiness."},
		{Title: "Model-authored title", Description: "free text stays"},
	}

	TranslateRuleBased(risks)
	tester.Eq(t, risks[0].Title, "مخاطر تأخر واجهة API")
	tester.Eq(t, risks[0].Description, "المهمة تعتمد على جاهزية واجهات API الخارجية أو الخلفية.")
	tester.Eq(t, risks[1].Title, "Model-authored title", "unknown strings fall through")
}
