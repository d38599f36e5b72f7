// Package planner turns a free-text project scope into planning artifacts
// (WBS, Gantt schedule, full plan) by prompting a completion gateway and
// normalizing whatever JSON comes back.
package planner

import (
	"context"
	"log"
	"strings"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/jsonutil"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/llmclient"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/types"
)

// Planner owns one gateway client. All derivations are synchronous,
// blocking single-call chains; the client's own timeout is the only
// cancellation beyond ctx.
type Planner struct {
	llm llmclient.Client
	log *log.Logger
}

func New(client llmclient.Client, logger *log.Logger) *Planner {
	if logger == nil {
		logger = log.Default()
	}
	return &Planner{llm: client, log: logger}
}

const parseErrorMessage = "Model did not return valid JSON."

// GenerateWBS derives a PERT-enriched WBS from a project scope. Domain
// outcomes (scope too short, not a software project, unparsable reply) are
// returned as structured documents with a nil error; only gateway failures
// surface as errors.
func (p *Planner) GenerateWBS(ctx context.Context, scope string) (*types.WBS, error) {
	if TooShortScope(scope) {
		return &types.WBS{
			Error:   types.ErrCodeScopeTooShort,
			Message: ShortScopeMessage(scope),
		}, nil
	}

	prompt := strings.ReplaceAll(wbsPromptTemplate, "<<SCOPE>>", scope)
	raw, err := p.llm.Complete(ctx, llmclient.Request{
		Messages: []llmclient.Message{
			{Role: "system", Content: projectManagerSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.15,
	})
	if err != nil {
		return nil, err
	}

	var wbs types.WBS
	if !p.decodeObject(raw, &wbs) {
		return &types.WBS{
			Error:       types.ErrCodeParse,
			Message:     parseErrorMessage,
			RawResponse: raw,
		}, nil
	}
	if wbs.Error == types.ErrCodeNotSoftwareProject {
		wbs.Message = NotSoftwareMessage(scope)
		return &wbs, nil
	}

	EnrichWBS(&wbs)
	return &wbs, nil
}

// GenerateGantt derives a schedule from scope plus optional methodology and
// resources text. Gantt dates are taken from the model as-is; start/end vs
// duration consistency is not recomputed.
func (p *Planner) GenerateGantt(ctx context.Context, scope, methodology, resources string) (*types.GanttPlan, error) {
	if TooShortScope(scope) {
		return &types.GanttPlan{
			Error:   types.ErrCodeScopeTooShort,
			Message: ShortScopeMessage(scope),
		}, nil
	}

	prompt := strings.ReplaceAll(ganttPromptTemplate, "<<SCOPE>>", scope)
	prompt = strings.ReplaceAll(prompt, "<<METHODOLOGY>>", methodology)
	prompt = strings.ReplaceAll(prompt, "<<RESOURCES>>", resources)

	raw, err := p.llm.Complete(ctx, llmclient.Request{
		Messages: []llmclient.Message{
			{Role: "system", Content: projectManagerSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, err
	}

	var plan types.GanttPlan
	if !p.decodeObject(raw, &plan) {
		return &types.GanttPlan{
			Error:       types.ErrCodeParse,
			Message:     parseErrorMessage,
			RawResponse: raw,
		}, nil
	}
	if plan.Error == types.ErrCodeNotSoftwareProject {
		plan.Message = NotSoftwareMessage(scope)
	}
	return &plan, nil
}

// TranslateToEnglish converts an Arabic scope to English with the same
// gateway. English input is returned unchanged without a call.
func (p *Planner) TranslateToEnglish(ctx context.Context, text string) (string, error) {
	if DetectLanguage(text) != "ar" {
		return text, nil
	}
	out, err := p.llm.Complete(ctx, llmclient.Request{
		Messages: []llmclient.Message{
			{Role: "system", Content: translatorSystemPrompt},
			{Role: "user", Content: text},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// decodeObject extracts the JSON object slice from a raw reply and decodes
// it into v. Returns false when neither extraction nor parsing succeeds;
// the caller decides the failure policy.
func (p *Planner) decodeObject(raw string, v any) bool {
	slice, err := jsonutil.ExtractObject(raw, "")
	if err != nil {
		return false
	}
	if err := jsonutil.UnmarshalFlex([]byte(slice), v); err != nil {
		p.log.Printf("planner: parse failure after extraction: %v", err)
		return false
	}
	return true
}
