package provider

import (
	"context"
	"encoding/json"
	"sync"
)

// MockProvider is a scripted Provider for tests. Responses are keyed by
// method name; unscripted methods return ErrUnsupportedMethod. Every call
// is recorded so tests can assert on the order of wallet requests.
type MockProvider struct {
	mu sync.Mutex

	// Responses maps method name to the JSON result to return.
	Responses map[string]any
	// Errs maps method name to an error to return instead of a response.
	Errs map[string]error

	// Calls records each Request in order.
	Calls []MockCall

	subMu   sync.Mutex
	subs    map[EventKind]map[int]chan Event
	nextSub int
}

// MockCall is one recorded Request.
type MockCall struct {
	Method string
	Params []any
}

// NewMock creates an empty MockProvider.
func NewMock() *MockProvider {
	return &MockProvider{
		Responses: make(map[string]any),
		Errs:      make(map[string]error),
		subs:      make(map[EventKind]map[int]chan Event),
	}
}

// Request implements Provider.
func (m *MockProvider) Request(_ context.Context, method string, params ...any) (json.RawMessage, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Method: method, Params: params})
	err := m.Errs[method]
	resp, ok := m.Responses[method]
	m.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnsupportedMethod
	}
	return json.Marshal(resp)
}

// Subscribe implements Provider.
func (m *MockProvider) Subscribe(kind EventKind) (<-chan Event, func()) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	if m.subs[kind] == nil {
		m.subs[kind] = make(map[int]chan Event)
	}
	id := m.nextSub
	m.nextSub++

	ch := make(chan Event, 4)
	m.subs[kind][id] = ch

	cancel := func() {
		m.subMu.Lock()
		defer m.subMu.Unlock()
		if sub, ok := m.subs[kind][id]; ok {
			delete(m.subs[kind], id)
			close(sub)
		}
	}
	return ch, cancel
}

// Emit delivers an event to current subscribers of its kind.
func (m *MockProvider) Emit(ev Event) {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	for _, ch := range m.subs[ev.Kind] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// SubscriberCount reports how many live subscriptions exist for kind.
func (m *MockProvider) SubscriberCount(kind EventKind) int {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	return len(m.subs[kind])
}

// CalledMethods returns the recorded method names in call order.
func (m *MockProvider) CalledMethods() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		out[i] = c.Method
	}
	return out
}
