package risk

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/llmclient"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/tester"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/types"
)

func wbsWithTasks(names ...string) *types.WBS {
	tasks := make([]types.Task, 0, len(names))
	for i, n := range names {
		tasks = append(tasks, types.Task{ID: string(rune('A' + i)), Name: n})
	}
	return &types.WBS{
		ProjectScope: "online store with payments and delivery",
		Phases:       []types.Phase{{ID: "P1", Name: "Build", Tasks: tasks}},
	}
}

func TestDeriveFromWBSCrossProduct(t *testing.T) {
	fake := llmclient.NewFakeClient(`{"title": "T", "description": "D", "probability_score": 4, "impact_score": 5}`)
	e := NewEngine(fake, nil)

	// "Deploy payment service" matches payment and deploy; "Database
	// migration" matches database and migration; "Write docs" matches
	// nothing: 4 matches, 4 calls, 4 records.
	w := wbsWithTasks("Deploy payment service", "Database migration", "Write docs")
	risks, err := e.DeriveFromWBS(context.Background(), w, "en")
	tester.NoErr(t, err)
	tester.Eq(t, len(risks), 4)
	tester.Eq(t, fake.Calls(), 4, "one call per (task, rule) match")

	first := risks[0]
	tester.Eq(t, first.Title, "T")
	tester.Eq(t, first.Probability, types.Probability("80%"))
	tester.Eq(t, first.Impact, "High")
	tester.Eq(t, first.Exposure, 20, "exposure uses raw scores")
	tester.Eq(t, first.Category, "External", "rule metadata is merged in")
	tester.Eq(t, first.Owner, "Backend Lead")
}

func TestDeriveFromWBSMissingScoresDefault(t *testing.T) {
	fake := llmclient.NewFakeClient(`{"title": "T", "description": "D"}`)
	e := NewEngine(fake, nil)

	risks, err := e.DeriveFromWBS(context.Background(), wbsWithTasks("Security audit"), "en")
	tester.NoErr(t, err)
	tester.Eq(t, risks[0].Probability, types.Probability("60%"))
	tester.Eq(t, risks[0].Impact, "Medium")
	tester.Eq(t, risks[0].Exposure, 9)
}

func TestDeriveFromWBSFailsFast(t *testing.T) {
	boom := errors.New("gateway down")
	fake := llmclient.NewFailingFakeClient(boom)
	e := NewEngine(fake, nil)

	_, err := e.DeriveFromWBS(context.Background(), wbsWithTasks("Deploy API", "UI polish"), "en")
	tester.True(t, errors.Is(err, boom))
	tester.Eq(t, fake.Calls(), 1, "first failure aborts the derivation")
}

func TestDeriveFromWBSKeywordsSkipVerbFragments(t *testing.T) {
	fake := llmclient.NewFakeClient(`{"title": "T", "description": "D", "probability_score": 3, "impact_score": 3}`)
	e := NewEngine(fake, nil)

	// "Build payment API" must match api and payment only; "build" must
	// not trigger the UI rule. "Frontend screens" matches it explicitly.
	w := wbsWithTasks("Build payment API", "Frontend screens")
	risks, err := e.DeriveFromWBS(context.Background(), w, "en")
	tester.NoErr(t, err)
	tester.Eq(t, len(risks), 3)
	tester.Eq(t, fake.Calls(), 3)
	tester.Eq(t, risks[2].Title, "T")
	tester.Eq(t, risks[2].Category, "Resource", "third match is the UI rework rule")
}

func TestDeriveFromWBSNoMatches(t *testing.T) {
	fake := llmclient.NewFakeClient()
	e := NewEngine(fake, nil)

	risks, err := e.DeriveFromWBS(context.Background(), wbsWithTasks("Write documentation"), "en")
	tester.NoErr(t, err)
	tester.Eq(t, len(risks), 0)
	tester.Eq(t, fake.Calls(), 0)
}

func TestSingleRiskPromptCarriesLanguage(t *testing.T) {
	fake := llmclient.NewFakeClient(`{"title": "T", "description": "D", "probability_score": 2, "impact_score": 2}`)
	e := NewEngine(fake, nil)

	risks, err := e.DeriveFromWBS(context.Background(), wbsWithTasks("اختبار test harness"), "ar")
	tester.NoErr(t, err)
	tester.Eq(t, risks[0].Impact, "منخفض")
	tester.True(t, strings.Contains(fake.Requests[0].Messages[0].Content, "Arabic"))
}
