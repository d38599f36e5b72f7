package planner

import (
	"context"
	"strings"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/jsonutil"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/llmclient"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/types"
)

// Refusal phrasings the model uses instead of the sentinel JSON when it
// declines non-software input.
var refusalPhrases = []string{
	"only for software project planning",
	"not a software project",
}

// GenerateFullPlan derives WBS + Gantt + risks from one free text in a
// single gateway call.
//
// The reply is decoded in stages: direct flexible unmarshal (which also
// unwraps string-quoted payloads) first, then heuristic object extraction.
// When every stage fails the caller receives a PARSE_ERROR document
// carrying the raw reply instead of an error. Risk probabilities arriving
// as bare numbers are normalized to percent strings; the embedded WBS is
// PERT-enriched.
func (p *Planner) GenerateFullPlan(ctx context.Context, description string) (*types.FullPlan, error) {
	if TooShortScope(description) {
		return &types.FullPlan{
			Error:   types.ErrCodeScopeTooShort,
			Message: ShortScopeMessage(description),
		}, nil
	}

	notSoftwareMsg := NotSoftwareMessage(description)
	prompt := strings.ReplaceAll(fullPlanPromptTemplate, "<<SCOPE_AND_RESOURCES>>", description)

	raw, err := p.llm.Complete(ctx, llmclient.Request{
		Messages: []llmclient.Message{
			{Role: "system", Content: projectManagerSystemPrompt},
			{Role: "system", Content: LanguageInstruction(description)},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.25,
	})
	if err != nil {
		return nil, err
	}

	// A plain-text refusal never parses as the sentinel JSON, so infer it
	// from the phrasing.
	lower := strings.ToLower(raw)
	for _, phrase := range refusalPhrases {
		if strings.Contains(lower, phrase) {
			return &types.FullPlan{
				Error:   types.ErrCodeNotSoftwareProject,
				Message: notSoftwareMsg,
			}, nil
		}
	}

	var plan types.FullPlan
	if err := jsonutil.UnmarshalFlex([]byte(raw), &plan); err != nil {
		slice, exErr := jsonutil.ExtractObject(raw, "")
		if exErr != nil {
			return parseFailure(raw), nil
		}
		if err := jsonutil.UnmarshalFlex([]byte(slice), &plan); err != nil {
			p.log.Printf("planner: full plan parse failure: %v", err)
			return parseFailure(raw), nil
		}
	}

	if plan.Error == types.ErrCodeNotSoftwareProject {
		plan.Message = notSoftwareMsg
		return &plan, nil
	}

	EnrichWBS(plan.WBS)
	return &plan, nil
}

func parseFailure(raw string) *types.FullPlan {
	return &types.FullPlan{
		Error:       types.ErrCodeParse,
		Message:     parseErrorMessage,
		RawResponse: raw,
	}
}
