package llmclient

import (
	"context"
	"os"
)

const (
	groqChatURL      = "https://api.groq.com/openai/v1/chat/completions"
	defaultGroqModel = "llama-3.3-70b-versatile"
)

// GroqClient calls the Groq chat completions API (OpenAI compatible).
// See: https://console.groq.com/docs/api-reference
type GroqClient struct {
	caller *chatCaller
}

// NewGroqClient creates a Groq client. If apiKey is empty, it falls back to
// the GROQ_API_KEY env var.
func NewGroqClient(apiKey, model string) *GroqClient {
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}
	if model == "" {
		model = defaultGroqModel
	}
	return &GroqClient{caller: newChatCaller(groqChatURL, apiKey, model)}
}

func (c *GroqClient) Name() string { return "Groq:" + c.caller.defaultModel }
func (c *GroqClient) Close() error { return nil }

func (c *GroqClient) Complete(ctx context.Context, req Request) (string, error) {
	return c.caller.complete(ctx, "groq", req)
}
