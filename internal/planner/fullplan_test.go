package planner

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/llmclient"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/tester"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/types"
)

func TestGenerateFullPlanNumericProbabilityNormalized(t *testing.T) {
	fake := llmclient.NewFakeClient(`{
		"project_name": "Store",
		"wbs": {"phases": [{"id": "P1", "tasks": [{"id": "T1", "name": "Build"}]}]},
		"gantt": {"gantt_tasks": []},
		"risks": [
			{"id": 1, "title": "Delay", "probability": 40, "impact": "High"},
			{"id": 2, "title": "Churn", "probability": "60%", "impact": "Low"}
		]
	}`)
	p := New(fake, nil)

	plan, err := p.GenerateFullPlan(context.Background(), testScope)
	tester.NoErr(t, err)
	tester.Eq(t, plan.Error, "")
	tester.Eq(t, plan.Risks[0].Probability, types.Probability("40%"))
	tester.Eq(t, plan.Risks[1].Probability, types.Probability("60%"))
	tester.Eq(t, plan.WBS.Phases[0].Tasks[0].EffortDays, 2.0, "embedded WBS gets enriched")

	req := fake.Requests[0]
	tester.Eq(t, len(req.Messages), 3)
	tester.Eq(t, req.Messages[1].Role, "system")
	tester.Eq(t, req.Temperature, float32(0.25))
}

func TestGenerateFullPlanRefusalInference(t *testing.T) {
	fake := llmclient.NewFakeClient("I am only for software project planning, sorry.")
	p := New(fake, nil)

	plan, err := p.GenerateFullPlan(context.Background(), "plan a big garden wedding for two hundred guests")
	tester.NoErr(t, err)
	tester.Eq(t, plan.Error, types.ErrCodeNotSoftwareProject)
	tester.Eq(t, plan.Message, NotSoftwareMessage("en"))
}

func TestGenerateFullPlanStringWrappedReply(t *testing.T) {
	wrapped, err := json.Marshal(`{"project_name": "Store", "wbs": {"phases": [{"id": "P1", "tasks": [{"id": "T1", "name": "Build"}]}]}, "risks": []}`)
	tester.NoErr(t, err)
	fake := llmclient.NewFakeClient(string(wrapped))
	p := New(fake, nil)

	plan, gerr := p.GenerateFullPlan(context.Background(), testScope)
	tester.NoErr(t, gerr)
	tester.Eq(t, plan.Error, "", "string-wrapped documents must be unwrapped, not PARSE_ERROR")
	tester.Eq(t, plan.ProjectName, "Store")
	tester.Eq(t, plan.WBS.Phases[0].Tasks[0].EffortDays, 2.0)
}

func TestGenerateFullPlanParseFailureCarriesRaw(t *testing.T) {
	fake := llmclient.NewFakeClient("no json here at all")
	p := New(fake, nil)

	plan, err := p.GenerateFullPlan(context.Background(), testScope)
	tester.NoErr(t, err)
	tester.Eq(t, plan.Error, types.ErrCodeParse)
	tester.Eq(t, plan.RawResponse, "no json here at all")
}

func TestGenerateFullPlanShortDescription(t *testing.T) {
	fake := llmclient.NewFakeClient()
	p := New(fake, nil)

	plan, err := p.GenerateFullPlan(context.Background(), "small app")
	tester.NoErr(t, err)
	tester.Eq(t, plan.Error, types.ErrCodeScopeTooShort)
	tester.Eq(t, fake.Calls(), 0)
}
