package ipfilter

import (
	"net/http"
	"net/url"
	"sync"
	"testing"
)

func mustNewFilter(t *testing.T, opts ...Option) *Filter {
	t.Helper()

	filter, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return filter
}

func newTestRequest(remoteAddr, path string) *http.Request {
	req := &http.Request{
		RemoteAddr: remoteAddr,
		Header:     make(http.Header),
	}

	if path != "" {
		req.URL = &url.URL{Path: path}
	}

	return req
}

type mockMetrics struct {
	mu          sync.Mutex
	decisions   map[string]int
	resolutions map[string]int
	outOfScope  int
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{
		decisions:   make(map[string]int),
		resolutions: make(map[string]int),
	}
}

func (m *mockMetrics) RecordDecision(verdict string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decisions[verdict]++
}

func (m *mockMetrics) RecordOutOfScope() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outOfScope++
}

func (m *mockMetrics) RecordResolution(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolutions[source]++
}

func (m *mockMetrics) decisionCount(verdict string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.decisions[verdict]
}

func (m *mockMetrics) resolutionCount(source string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resolutions[source]
}

func (m *mockMetrics) outOfScopeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outOfScope
}
