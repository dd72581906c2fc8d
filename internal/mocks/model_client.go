package mocks

import (
	"context"
	"sync"

	"github.com/Jatin020403/quiz-api/internal/generation"
)

// MockModelClient implements generation.ModelClient for testing.
type MockModelClient struct {
	// InvokeFn overrides the default Response/Err when set.
	InvokeFn func(ctx context.Context, prompt string) (*generation.Response, error)

	Response *generation.Response
	Err      error

	mu      sync.Mutex
	prompts []string
}

var _ generation.ModelClient = (*MockModelClient)(nil)

// Invoke implements generation.ModelClient.
func (m *MockModelClient) Invoke(ctx context.Context, prompt string) (*generation.Response, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.InvokeFn != nil {
		return m.InvokeFn(ctx, prompt)
	}
	return m.Response, m.Err
}

// Prompts returns every prompt passed to Invoke, in call order.
func (m *MockModelClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// CallCount returns how many times Invoke was called.
func (m *MockModelClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// NewMockModelClientWithText returns a client whose replies carry text as
// the only part of the only candidate.
func NewMockModelClientWithText(text string) *MockModelClient {
	return &MockModelClient{Response: TextResponse(text)}
}

// NewMockModelClientWithError returns a client that always fails with err.
func NewMockModelClientWithError(err error) *MockModelClient {
	return &MockModelClient{Err: err}
}

// TextResponse builds a single candidate response holding text.
func TextResponse(text string) *generation.Response {
	return &generation.Response{
		Candidates: []*generation.Candidate{
			{
				Content: &generation.Content{
					Role:  "model",
					Parts: []*generation.Part{generation.NewTextPart(text)},
				},
				FinishReason: "STOP",
			},
		},
	}
}
