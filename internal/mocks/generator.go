package mocks

import (
	"context"
	"sync"

	"github.com/lexiblog/lexiblog-api/internal/generation"
)

// MockClient implements generation.Client for testing
type MockClient struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt string, cfg generation.Config) (string, error)

	// Default response values
	Response string
	Err      error

	mu      sync.Mutex
	prompts []string
	configs []generation.Config
	ctxs    []context.Context
}

// Generate implements the generation.Client interface
func (m *MockClient) Generate(ctx context.Context, prompt string, cfg generation.Config) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.configs = append(m.configs, cfg)
	m.ctxs = append(m.ctxs, ctx)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt, cfg)
	}
	return m.Response, m.Err
}

// Calls returns how many times Generate was called.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// LastPrompt returns the prompt of the most recent call, or "".
func (m *MockClient) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}

// LastConfig returns the config of the most recent call.
func (m *MockClient) LastConfig() generation.Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.configs) == 0 {
		return generation.Config{}
	}
	return m.configs[len(m.configs)-1]
}

// LastContext returns the context of the most recent call, or nil.
func (m *MockClient) LastContext() context.Context {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.ctxs) == 0 {
		return nil
	}
	return m.ctxs[len(m.ctxs)-1]
}

// MockClientFactory implements generation.ClientFactory for testing. With
// Err set, NewClient fails the way a real factory does without a credential.
type MockClientFactory struct {
	Client *MockClient
	Err    error
	Name   string

	mu    sync.Mutex
	calls int
}

// NewMockClientFactory creates a factory that hands out client.
func NewMockClientFactory(client *MockClient) *MockClientFactory {
	return &MockClientFactory{Client: client}
}

// NewMockClientFactoryWithoutCredential creates a factory whose NewClient
// fails with generation.ErrAuthentication.
func NewMockClientFactoryWithoutCredential() *MockClientFactory {
	return &MockClientFactory{Client: &MockClient{}, Err: generation.ErrAuthentication}
}

// NewClient implements generation.ClientFactory.
func (f *MockClientFactory) NewClient(_ context.Context) (generation.Client, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	return f.Client, nil
}

// Provider implements generation.ClientFactory.
func (f *MockClientFactory) Provider() string {
	if f.Name == "" {
		return "mock"
	}
	return f.Name
}

// Calls returns how many times NewClient was called.
func (f *MockClientFactory) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
