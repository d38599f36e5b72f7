package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// chatCaller implements the OpenAI-compatible chat/completions wire shape
// shared by OpenRouter and Groq.
type chatCaller struct {
	http         *http.Client
	url          string
	apiKey       string
	defaultModel string
	extraHeaders map[string]string
}

type chatReq struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature"`
}

type chatResp struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func newChatCaller(url, apiKey, defaultModel string) *chatCaller {
	return &chatCaller{
		http:         &http.Client{Timeout: 60 * time.Second},
		url:          url,
		apiKey:       apiKey,
		defaultModel: defaultModel,
	}
}

func (c *chatCaller) complete(ctx context.Context, provider string, req Request) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", ErrNoCredential
	}
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}
	body, err := json.Marshal(chatReq{
		Model:       model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	for k, v := range c.extraHeaders {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		const max = 2048
		if len(raw) > max {
			raw = raw[:max]
		}
		terr := &TransportError{Err: fmt.Errorf("%s: unexpected status %s: %s", provider, resp.Status, raw)}
		// Context-length overflows never recover on retry.
		if resp.StatusCode == 400 && strings.Contains(string(raw), `"code":"context_length_exceeded"`) {
			return "", NewPermanentError(terr)
		}
		return "", terr
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	var out chatResp
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", &ProtocolError{Provider: provider, Body: trimBody(raw)}
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", &ProtocolError{Provider: provider, Body: trimBody(raw)}
	}
	return out.Choices[0].Message.Content, nil
}

func trimBody(raw []byte) string {
	const max = 1024
	if len(raw) > max {
		raw = raw[:max]
	}
	return string(raw)
}
