// Package testutil holds shared fakes for service and handler tests.
package testutil

import (
	"context"
	"sync"
	"time"

	"media2text/internal/app/api/provider"
)

// MockProvider is a configurable in-memory transcription provider.
type MockProvider struct {
	mu sync.Mutex

	ProviderName    string
	DefaultResponse string
	DefaultError    error
	ResponseMap     map[string]string
	ErrorMap        map[string]error

	CallCount int
	Requests  []provider.Request
}

func NewMockProvider(name string) *MockProvider {
	return &MockProvider{
		ProviderName:    name,
		DefaultResponse: "mock transcription result",
		ResponseMap:     make(map[string]string),
		ErrorMap:        make(map[string]error),
	}
}

func (m *MockProvider) Name() string {
	return m.ProviderName
}

func (m *MockProvider) Transcribe(ctx context.Context, req provider.Request) (*provider.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.Requests = append(m.Requests, req)

	if err, ok := m.ErrorMap[req.AudioPath]; ok {
		return nil, err
	}
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}

	text := m.DefaultResponse
	if t, ok := m.ResponseMap[req.AudioPath]; ok {
		text = t
	}
	return &provider.Response{Text: text, Elapsed: time.Millisecond}, nil
}

// LastRequest returns the most recent request, nil when none.
func (m *MockProvider) LastRequest() *provider.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Requests) == 0 {
		return nil
	}
	req := m.Requests[len(m.Requests)-1]
	return &req
}
