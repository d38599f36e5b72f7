package llmclient

import (
	"context"
	"strings"

	genai "google.golang.org/genai"
)

// GeminiClient adapts the official genai client onto the chat contract. It
// is an alternative gateway backend for deployments without an
// OpenAI-compatible key.
type GeminiClient struct {
	cli   *genai.Client
	model string
}

const defaultGeminiModel = "gemini-2.5-flash"

// NewGeminiClient creates a Gemini-backed client. The genai SDK reads
// GEMINI_API_KEY from the environment.
func NewGeminiClient(ctx context.Context, model string) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiClient{cli: cli, model: model}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }
func (g *GeminiClient) Close() error { return nil }

func (g *GeminiClient) Complete(ctx context.Context, req Request) (string, error) {
	model := resolveGeminiModel(req.Model, g.model)

	// Gemini separates system instructions from the turn sequence and
	// names the assistant role "model".
	var system []string
	var contents []*genai.Content
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			system = append(system, m.Content)
		case "assistant":
			contents = append(contents, &genai.Content{
				Role:  "model",
				Parts: []*genai.Part{{Text: m.Content}},
			})
		default:
			contents = append(contents, &genai.Content{
				Role:  "user",
				Parts: []*genai.Part{{Text: m.Content}},
			})
		}
	}

	cfg := &genai.GenerateContentConfig{Temperature: genai.Ptr(req.Temperature)}
	if len(system) > 0 {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: strings.Join(system, "\n\n")}},
		}
	}

	resp, err := g.cli.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &ProtocolError{Provider: "gemini", Body: "empty candidates"}
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// resolveGeminiModel keeps requested Gemini model ids and substitutes the
// configured default for foreign ones: callers tuned for the
// OpenAI-compatible backends pin llama model names, which this API would
// reject outright.
func resolveGeminiModel(requested, fallback string) string {
	requested = strings.TrimSpace(requested)
	if strings.HasPrefix(requested, "gemini") {
		return requested
	}
	return fallback
}
