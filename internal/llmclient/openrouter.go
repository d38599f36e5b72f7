package llmclient

import (
	"context"
	"os"
	"strings"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	defaultOpenRouterModel   = "meta-llama/llama-3.1-8b-instruct"
)

// OpenRouterClient calls the OpenRouter chat completions API (OpenAI
// compatible). See: https://openrouter.ai/docs/api-reference
type OpenRouterClient struct {
	caller *chatCaller
}

// NewOpenRouterClient creates an OpenRouter client. Empty arguments fall
// back to OPENROUTER_API_KEY / OPENROUTER_BASE_URL env vars and the default
// model.
func NewOpenRouterClient(apiKey, baseURL, model string) *OpenRouterClient {
	if apiKey == "" {
		apiKey = os.Getenv("OPENROUTER_API_KEY")
	}
	if baseURL == "" {
		baseURL = os.Getenv("OPENROUTER_BASE_URL")
	}
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	if model == "" {
		model = defaultOpenRouterModel
	}
	caller := newChatCaller(strings.TrimRight(baseURL, "/")+"/chat/completions", apiKey, model)
	// OpenRouter attributes traffic by these optional headers.
	caller.extraHeaders = map[string]string{
		"HTTP-Referer": "http://localhost:8000",
		"X-Title":      "SPM Project Planner",
	}
	return &OpenRouterClient{caller: caller}
}

func (c *OpenRouterClient) Name() string { return "OpenRouter:" + c.caller.defaultModel }
func (c *OpenRouterClient) Close() error { return nil }

func (c *OpenRouterClient) Complete(ctx context.Context, req Request) (string, error) {
	return c.caller.complete(ctx, "openrouter", req)
}
