package llmclient

import (
	"context"
	"sync"
)

// FakeClient returns scripted replies for offline use and tests. Replies
// are consumed in order; the last one repeats once the script runs out.
// When Fn is set it takes precedence over the script.
type FakeClient struct {
	mu      sync.Mutex
	replies []string
	calls   int
	err     error

	// Fn, when non-nil, computes the reply per request.
	Fn func(req Request) (string, error)

	// Requests records every request seen, in order.
	Requests []Request
}

func NewFakeClient(replies ...string) *FakeClient {
	return &FakeClient{replies: replies}
}

// NewFailingFakeClient returns a client whose every call fails with err.
func NewFailingFakeClient(err error) *FakeClient {
	return &FakeClient{err: err}
}

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

// Calls reports how many times Complete has been invoked.
func (f *FakeClient) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *FakeClient) Complete(ctx context.Context, req Request) (string, error) {
	f.mu.Lock()
	f.calls++
	i := f.calls - 1
	f.Requests = append(f.Requests, req)
	f.mu.Unlock()

	if f.Fn != nil {
		return f.Fn(req)
	}
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "{}", nil
	}
	if i >= len(f.replies) {
		i = len(f.replies) - 1
	}
	return f.replies[i], nil
}
