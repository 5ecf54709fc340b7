package gpc

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type memStore struct {
	enabled bool
	found   bool
}

func (m *memStore) GPCEnabled() (bool, bool, error) { return m.enabled, m.found, nil }

func (m *memStore) SetGPCEnabled(enabled bool) error {
	m.enabled = enabled
	m.found = true

	return nil
}

func TestNewState_DefaultWhenUnset(t *testing.T) {
	store := &memStore{}

	state, err := NewState(store, true)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}

	if !state.Enabled() {
		t.Error("expected default-enabled state")
	}

	if !store.found {
		t.Error("expected default to be persisted")
	}
}

func TestNewState_LoadsPersisted(t *testing.T) {
	store := &memStore{enabled: false, found: true}

	state, err := NewState(store, true)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}

	if state.Enabled() {
		t.Error("persisted off state should win over the default")
	}
}

func TestToggle_Persists(t *testing.T) {
	store := &memStore{}

	state, err := NewState(store, true)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}

	next, err := state.Toggle()
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	if next || state.Enabled() {
		t.Error("expected toggle to disable")
	}

	// A re-initialized state sees the toggled value.
	reloaded, err := NewState(store, true)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}

	if reloaded.Enabled() {
		t.Error("toggle was not persisted")
	}
}

func TestTransport_AddsHeaderWhenEnabled(t *testing.T) {
	var gotHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get(HeaderName)
	}))
	t.Cleanup(server.Close)

	state, err := NewState(&memStore{enabled: true, found: true}, true)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}

	client := &http.Client{Transport: &Transport{State: state}}

	if _, err := client.Get(server.URL); err != nil {
		t.Fatalf("request: %v", err)
	}

	if gotHeader != HeaderValue {
		t.Errorf("Sec-GPC = %q, want %q", gotHeader, HeaderValue)
	}

	// Disabled: no header.
	if _, err := state.Toggle(); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	if _, err := client.Get(server.URL); err != nil {
		t.Fatalf("request: %v", err)
	}

	if gotHeader != "" {
		t.Errorf("Sec-GPC should be absent when disabled, got %q", gotHeader)
	}
}

func TestLooksLikeOptOutURL(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://example.com/privacy", true},
		{"https://example.com/opt-out/form", true},
		{"https://example.com/OptOut", true},
		{"https://example.com/do-not-sell", true},
		{"https://example.com/ccpa-request", true},
		{"https://example.com/your-rights", true},
		{"https://example.com/data-request", true},
		{"https://example.com/gdpr", true},
		{"https://example.com/about", false},
		{"https://example.com/blog/post", false},
	}

	for _, tc := range tests {
		if got := LooksLikeOptOutURL(tc.url); got != tc.expected {
			t.Errorf("LooksLikeOptOutURL(%q) = %v, want %v", tc.url, got, tc.expected)
		}
	}
}

func TestMiddleware_StampsResponseHeader(t *testing.T) {
	state, err := NewState(&memStore{enabled: true, found: true}, true)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}

	handler := Middleware(state)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get(HeaderName); got != HeaderValue {
		t.Errorf("Sec-GPC = %q, want %q", got, HeaderValue)
	}

	if _, err := state.Toggle(); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get(HeaderName); got != "" {
		t.Errorf("Sec-GPC should be absent when disabled, got %q", got)
	}
}
