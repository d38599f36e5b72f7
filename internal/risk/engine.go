package risk

import (
	"context"
	"fmt"
	"strings"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/jsonutil"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/llmclient"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/types"
)

// singleRiskModel is the fast model used for the per-match calls; each call
// carries one short prompt and returns one small object.
const singleRiskModel = "llama-3.1-8b-instant"

// Engine derives risks by scanning WBS tasks against the rule catalog.
type Engine struct {
	llm   llmclient.Client
	rules []Rule
}

// NewEngine builds a rule-based deriver. A nil rules slice selects the
// process-wide Catalog.
func NewEngine(client llmclient.Client, rules []Rule) *Engine {
	if rules == nil {
		rules = Catalog
	}
	return &Engine{llm: client, rules: rules}
}

// singleRiskReply is the JSON shape requested from the model for one
// (task, rule) match. Scores are pointers so a missing field can fall back
// to the neutral midpoint instead of zero.
type singleRiskReply struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	ProbabilityScore *int   `json:"probability_score"`
	ImpactScore      *int   `json:"impact_score"`
}

// DeriveFromWBS flattens all tasks across phases and, for every
// case-insensitive keyword match between a task name and a catalog rule,
// issues one gateway call for a title/description/score quartet. Calls run
// strictly sequentially; O(tasks x rules) round-trips is this system's
// cost ceiling. No deduplication: the cross-product is the intended output.
//
// Unlike the scope-based deriver, this path fails fast: any gateway,
// extraction or parse failure aborts the whole derivation. Provisional ids
// are assigned in production order and discarded again by Merge.
func (e *Engine) DeriveFromWBS(ctx context.Context, w *types.WBS, lang string) ([]types.Risk, error) {
	risks := []types.Risk{}
	riskID := 1

	for _, task := range w.Tasks() {
		name := strings.ToLower(task.Name)
		for _, rule := range e.rules {
			if !strings.Contains(name, rule.Keyword) {
				continue
			}

			reply, err := e.singleRisk(ctx, task.Name, rule.Title, lang)
			if err != nil {
				return nil, fmt.Errorf("risk: task %q rule %q: %w", task.Name, rule.Keyword, err)
			}

			probScore := scoreOrDefault(reply.ProbabilityScore)
			impactScore := scoreOrDefault(reply.ImpactScore)

			risks = append(risks, types.Risk{
				ID:          riskID,
				Title:       reply.Title,
				Description: reply.Description,
				Category:    rule.Category,
				Probability: types.Probability(fmt.Sprintf("%d%%", ProbabilityToPercent(probScore))),
				Impact:      ImpactToLabel(impactScore, lang),
				Owner:       rule.Owner,
				Mitigation:  rule.Mitigation,
				Trigger:     rule.Trigger,
				Exposure:    ComputeExposure(probScore, impactScore),
			})
			riskID++
		}
	}
	return risks, nil
}

func (e *Engine) singleRisk(ctx context.Context, taskName, riskTitle, lang string) (*singleRiskReply, error) {
	language := "English"
	if lang == "ar" {
		language = "Arabic"
	}
	prompt := fmt.Sprintf(`You are a software risk analysis expert.

Task: %s
Risk name: %s
Language: %s

JSON ONLY:
{
    "title": "",
    "description": "",
    "probability_score": 1,
    "impact_score": 1
}`, taskName, riskTitle, language)

	raw, err := e.llm.Complete(ctx, llmclient.Request{
		Messages:    []llmclient.Message{{Role: "user", Content: prompt}},
		Model:       singleRiskModel,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, err
	}

	slice, err := jsonutil.ExtractObject(raw, "")
	if err != nil {
		return nil, err
	}
	var reply singleRiskReply
	if err := jsonutil.UnmarshalFlex([]byte(slice), &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// scoreOrDefault falls back to the neutral midpoint for missing scores.
func scoreOrDefault(s *int) int {
	if s == nil {
		return 3
	}
	return *s
}
