package mocks

import (
	"context"
	"sync"

	"github.com/lexiblog/lexiblog-api/internal/domain"
	"github.com/lexiblog/lexiblog-api/internal/service"
)

// MockContentService implements service.ContentService for testing
type MockContentService struct {
	DispatchFn func(ctx context.Context, action string, payload domain.Payload) (*service.Result, error)

	mu       sync.Mutex
	actions  []string
	payloads []domain.Payload
	ctxs     []context.Context
}

// Dispatch implements service.ContentService.
func (m *MockContentService) Dispatch(
	ctx context.Context,
	action string,
	payload domain.Payload,
) (*service.Result, error) {
	m.mu.Lock()
	m.actions = append(m.actions, action)
	m.payloads = append(m.payloads, payload)
	m.ctxs = append(m.ctxs, ctx)
	m.mu.Unlock()

	if m.DispatchFn != nil {
		return m.DispatchFn(ctx, action, payload)
	}
	return nil, nil
}

// Calls returns how many times Dispatch was called.
func (m *MockContentService) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.actions)
}

// LastCall returns the arguments of the most recent call.
func (m *MockContentService) LastCall() (context.Context, string, domain.Payload) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.actions) == 0 {
		return nil, "", nil
	}
	i := len(m.actions) - 1
	return m.ctxs[i], m.actions[i], m.payloads[i]
}
