package risk

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/jsonutil"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/llmclient"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/planner"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/types"
)

const scopeRiskPromptTemplate = `You are an expert in **software project risk management**.

Detected language: <<LANG>>

LANGUAGE RULE:
- If language is "ar": return all text in Arabic.
- If language is "en": return all text in English.

PROJECT SCOPE:
<<SCOPE>>

<<WBS_BLOCK>>

STRICT RULES:
- Only JSON output
- 5-12 risks
- probability & impact must be integers 1-5

JSON FORMAT EXACTLY:

{
  "project_scope": "short title or cleaned summary of the project",
  "risks": [
    {
      "id": 1,
      "title": "",
      "description": "",
      "category": "",
      "probability": 1,
      "impact": 1,
      "owner": "",
      "mitigation": "",
      "trigger": ""
    }
  ]
}

Generate risks in <<LANGUAGE>> only.`

// scopeRiskStartHint anchors extraction at the expected leading key so
// prose before the object does not shift the slice.
const scopeRiskStartHint = `{"project_scope"`

// ScopeResult is the outcome of a scope-wide risk derivation.
type ScopeResult struct {
	ProjectScope string       `json:"project_scope"`
	Risks        []types.Risk `json:"risks"`
}

// scopeReply mirrors the model payload, with probability/impact as raw 1-5
// integers before conversion.
type scopeReply struct {
	ProjectScope string `json:"project_scope"`
	Risks        []struct {
		ID          int    `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Probability *int   `json:"probability"`
		Impact      *int   `json:"impact"`
		Owner       string `json:"owner"`
		Mitigation  string `json:"mitigation"`
		Trigger     string `json:"trigger"`
	} `json:"risks"`
}

// AI derives a complete risk list from the project scope in one gateway
// call, optionally WBS-contextualized.
type AI struct {
	llm llmclient.Client
	log *log.Logger
}

func NewAI(client llmclient.Client, logger *log.Logger) *AI {
	if logger == nil {
		logger = log.Default()
	}
	return &AI{llm: client, log: logger}
}

// DeriveFromScope requests 5-12 risks for the whole scope. The short-scope
// gate fires before any gateway call; a client without credentials fails
// fast inside Complete, also before dialing.
//
// This path degrades instead of failing: when the reply cannot be
// extracted or parsed, the raw text is logged and an empty risk list is
// returned with the original scope, so callers can proceed with partial
// results. The model's echoed project_scope is never trusted; the
// caller's input always wins. Raw 1-5 scores are converted to the percent
// string / label forms used everywhere else.
func (a *AI) DeriveFromScope(ctx context.Context, scope string, wbsContext *types.WBS) (*ScopeResult, error) {
	if planner.TooShortScope(scope) {
		return nil, &planner.ValidationError{Message: planner.ShortScopeMessage(scope)}
	}

	lang := planner.DetectLanguage(scope)
	language := "English"
	if lang == "ar" {
		language = "Arabic"
	}

	wbsBlock := "No WBS provided."
	if wbsContext != nil {
		if b, err := jsonutil.MarshalNoEscapeIndent(wbsContext, "", "  "); err == nil {
			wbsBlock = "HIGH LEVEL WBS (for context only):\n" + string(b)
		}
	}

	prompt := strings.ReplaceAll(scopeRiskPromptTemplate, "<<LANG>>", lang)
	prompt = strings.ReplaceAll(prompt, "<<SCOPE>>", scope)
	prompt = strings.ReplaceAll(prompt, "<<WBS_BLOCK>>", wbsBlock)
	prompt = strings.ReplaceAll(prompt, "<<LANGUAGE>>", language)

	raw, err := a.llm.Complete(ctx, llmclient.Request{
		Messages:    []llmclient.Message{{Role: "user", Content: prompt}},
		Temperature: 0.3,
	})
	if err != nil {
		return nil, err
	}

	reply, perr := a.parse(raw)
	if perr != nil {
		// Degrade to an empty list rather than failing the request; the
		// raw reply goes to the log for diagnosis.
		a.log.Printf("risk: cannot parse scope risks: %v", perr)
		a.log.Printf("risk: raw model response:\n%s", raw)
		return &ScopeResult{ProjectScope: scope, Risks: []types.Risk{}}, nil
	}

	out := &ScopeResult{ProjectScope: scope, Risks: make([]types.Risk, 0, len(reply.Risks))}
	for _, r := range reply.Risks {
		probScore := scoreOrDefault(r.Probability)
		impactScore := scoreOrDefault(r.Impact)
		out.Risks = append(out.Risks, types.Risk{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Category:    r.Category,
			Probability: types.Probability(fmt.Sprintf("%d%%", ProbabilityToPercent(probScore))),
			Impact:      ImpactToLabel(impactScore, lang),
			Owner:       r.Owner,
			Mitigation:  r.Mitigation,
			Trigger:     r.Trigger,
		})
	}
	return out, nil
}

func (a *AI) parse(raw string) (*scopeReply, error) {
	slice, err := jsonutil.ExtractObject(raw, scopeRiskStartHint)
	if err != nil {
		return nil, err
	}
	var reply scopeReply
	if err := jsonutil.UnmarshalFlex([]byte(slice), &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
