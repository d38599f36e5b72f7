// Package llmclient provides the completion gateway: a single textual
// capability over several chat-completion providers. Clients only perform
// the API call itself; cross-cutting concerns (retries, logging) are
// applied via Middleware.
package llmclient

import (
	"context"
	"errors"
	"fmt"
)

// Message is one role-tagged entry of a chat request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a provider-neutral completion request. Model may be empty, in
// which case the client's default model is used.
type Request struct {
	Messages    []Message
	Model       string
	Temperature float32
}

// Client sends a chat request to one provider and returns the assistant
// text verbatim.
type Client interface {
	Name() string
	Complete(ctx context.Context, req Request) (string, error)
	Close() error
}

// ErrNoCredential is returned before any network dial when a client was
// constructed without an API key.
var ErrNoCredential = errors.New("llmclient: no API credential configured")

// TransportError wraps network failures, timeouts and non-2xx responses.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "llmclient: transport: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError reports a 2xx response whose body lacks the expected
// choices[0].message.content shape.
type ProtocolError struct {
	Provider string
	Body     string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("llmclient: %s response missing choices[0].message.content: %s", e.Provider, e.Body)
}

// PermanentError indicates an error that will not resolve with retries.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}
