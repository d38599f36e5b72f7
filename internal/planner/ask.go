package planner

import (
	"context"
	"strings"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/llmclient"
)

// Q&A explanation modes.
const (
	ModeNormal   = "normal"
	ModeDetailed = "detailed"
	ModeSummary  = "summary"
	ModeChild    = "child"
)

// Answer routes a free-text question through the domain-guard system prompt
// and a mode-specific style instruction. Child mode swaps in its own
// template (short sentences, one analogy, JSON-wrapped answer) and runs
// slightly cooler; the other modes share one parameterized instruction.
// The reply text is returned as-is; child mode's JSON wrapping is left for
// the caller to unwrap.
func (p *Planner) Answer(ctx context.Context, question, mode string) (string, error) {
	if mode == "" {
		mode = ModeNormal
	}

	if mode == ModeChild {
		out, err := p.llm.Complete(ctx, llmclient.Request{
			Messages: []llmclient.Message{
				{Role: "system", Content: projectManagerSystemPrompt},
				{Role: "system", Content: childModePrompt},
				{Role: "user", Content: question},
			},
			Temperature: 0.3,
		})
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(out), nil
	}

	modePrompt := strings.ReplaceAll(explanationModePrompt, "<<MODE>>", mode)
	out, err := p.llm.Complete(ctx, llmclient.Request{
		Messages: []llmclient.Message{
			{Role: "system", Content: projectManagerSystemPrompt},
			{Role: "assistant", Content: modePrompt},
			{Role: "user", Content: question},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
