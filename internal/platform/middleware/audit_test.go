package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eidefo/eidefo/internal/platform/auth"
)

// mockRecorder collects audit entries for assertions.
type mockRecorder struct {
	mu      sync.Mutex
	entries []AuditEntry
	err     error // if set, RecordAccess returns this error
}

func (m *mockRecorder) RecordAccess(entry AuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return m.err
}

func (m *mockRecorder) last() AuditEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[len(m.entries)-1]
}

func (m *mockRecorder) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// newTestContext creates an echo context with optional request mutations.
func newTestContext(method, path string, opts ...func(*http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

func withProfessional(name, profession, institution string) func(*http.Request) {
	return func(req *http.Request) {
		ctx := req.Context()
		ctx = context.WithValue(ctx, auth.ProfessionalKey, name)
		ctx = context.WithValue(ctx, auth.ProfessionKey, profession)
		ctx = context.WithValue(ctx, auth.InstitutionKey, institution)
		*req = *req.WithContext(ctx)
	}
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// --- Tests ---

func TestAudit_SessionRead(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	rec := &mockRecorder{}
	sessionID := uuid.New().String()

	c, _ := newTestContext(http.MethodGet,
		fmt.Sprintf("/api/sessions/%s", sessionID),
		withProfessional("Ana Rojas", "Fonoaudióloga", "Hospital Regional"),
	)
	c.Set("request_id", "req-abc")

	mw := Audit(logger, rec)
	h := mw(okHandler)
	err := h(c)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.count() != 1 {
		t.Fatalf("expected 1 audit entry, got %d", rec.count())
	}
	entry := rec.last()
	if entry.Professional != "Ana Rojas" {
		t.Errorf("expected professional 'Ana Rojas', got %q", entry.Professional)
	}
	if entry.Profession != "Fonoaudióloga" {
		t.Errorf("expected profession 'Fonoaudióloga', got %q", entry.Profession)
	}
	if entry.SessionID != sessionID {
		t.Errorf("expected session_id %q, got %q", sessionID, entry.SessionID)
	}
	if entry.Action != "read" {
		t.Errorf("expected action 'read', got %q", entry.Action)
	}
	if entry.RequestID != "req-abc" {
		t.Errorf("expected request_id 'req-abc', got %q", entry.RequestID)
	}
	if entry.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", entry.StatusCode)
	}
}

func TestAudit_StageWrite(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	rec := &mockRecorder{}
	sessionID := uuid.New().String()

	c, _ := newTestContext(http.MethodPatch,
		fmt.Sprintf("/api/sessions/%s/stages/respiration", sessionID),
		withProfessional("Ana Rojas", "Fonoaudióloga", ""),
	)

	mw := Audit(logger, rec)
	h := mw(okHandler)
	err := h(c)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry := rec.last()
	if entry.Action != "update" {
		t.Errorf("expected action 'update', got %q", entry.Action)
	}
	if entry.SessionID != sessionID {
		t.Errorf("expected session_id %q, got %q", sessionID, entry.SessionID)
	}
}

func TestAudit_SkipsNonAuditablePaths(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	rec := &mockRecorder{}

	paths := []string{"/health", "/metrics", "/", "/other/path"}
	for _, path := range paths {
		c, _ := newTestContext(http.MethodGet, path)
		mw := Audit(logger, rec)
		h := mw(okHandler)
		err := h(c)
		if err != nil {
			t.Fatalf("unexpected error for path %s: %v", path, err)
		}
	}

	if rec.count() != 0 {
		t.Errorf("expected 0 audit entries for non-auditable paths, got %d", rec.count())
	}
}

func TestAudit_DeleteAction(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	rec := &mockRecorder{}
	sessionID := uuid.New().String()

	c, _ := newTestContext(http.MethodDelete,
		fmt.Sprintf("/api/sessions/%s", sessionID),
		withProfessional("Ana Rojas", "Fonoaudióloga", ""),
	)

	mw := Audit(logger, rec)
	h := mw(okHandler)
	err := h(c)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry := rec.last()
	if entry.Action != "delete" {
		t.Errorf("expected action 'delete', got %q", entry.Action)
	}
}

func TestAudit_RecorderError_DoesNotBreakRequest(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	rec := &mockRecorder{err: errors.New("sink unavailable")}

	c, _ := newTestContext(http.MethodGet,
		"/api/sessions",
		withProfessional("Ana Rojas", "Fonoaudióloga", ""),
	)

	mw := Audit(logger, rec)
	h := mw(okHandler)
	err := h(c)

	// The request should still succeed even if the recorder fails
	if err != nil {
		t.Fatalf("expected no error even when recorder fails, got: %v", err)
	}
}

func TestAudit_NoRecorder_LogOnly(t *testing.T) {
	logger := zerolog.New(os.Stderr)

	c, _ := newTestContext(http.MethodGet,
		"/api/sessions",
		withProfessional("Ana Rojas", "Fonoaudióloga", ""),
	)

	// Pass no recorder -- should only log, not panic
	mw := Audit(logger)
	h := mw(okHandler)
	err := h(c)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAudit_CapturesIPAndUserAgent(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	rec := &mockRecorder{}

	c, _ := newTestContext(http.MethodGet,
		"/api/sessions",
		withProfessional("Ana Rojas", "Fonoaudióloga", ""),
		func(req *http.Request) {
			req.Header.Set("User-Agent", "eidefo-client/1.0")
		},
	)

	mw := Audit(logger, rec)
	h := mw(okHandler)
	err := h(c)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry := rec.last()
	if entry.UserAgent != "eidefo-client/1.0" {
		t.Errorf("expected user_agent 'eidefo-client/1.0', got %q", entry.UserAgent)
	}
	// IP should be non-empty (httptest uses 192.0.2.1 by default)
	if entry.IPAddress == "" {
		t.Error("expected non-empty IP address")
	}
}

// --- Unit tests for helper functions ---

func TestIsAuditablePath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/api/sessions", true},
		{"/api/sessions/abc/stages/respiration", true},
		{"/api/auth/login", true},
		{"/health", false},
		{"/", false},
		{"/api", false}, // no trailing slash
	}
	for _, tt := range tests {
		if got := isAuditablePath(tt.path); got != tt.want {
			t.Errorf("isAuditablePath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestHttpMethodToAction(t *testing.T) {
	tests := []struct {
		method string
		want   string
	}{
		{http.MethodGet, "read"},
		{http.MethodHead, "read"},
		{http.MethodPost, "create"},
		{http.MethodPut, "update"},
		{http.MethodPatch, "update"},
		{http.MethodDelete, "delete"},
		{http.MethodOptions, "read"},
	}
	for _, tt := range tests {
		if got := httpMethodToAction(tt.method); got != tt.want {
			t.Errorf("httpMethodToAction(%q) = %q, want %q", tt.method, got, tt.want)
		}
	}
}

func TestExtractSessionID(t *testing.T) {
	sessionUUID := uuid.New().String()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"session path", fmt.Sprintf("/api/sessions/%s", sessionUUID), sessionUUID},
		{"stage path", fmt.Sprintf("/api/sessions/%s/stages/respiration", sessionUUID), sessionUUID},
		{"list path", "/api/sessions", ""},
		{"non-uuid segment", "/api/sessions/latest", ""},
		{"other path", "/api/auth/login", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractSessionID(tt.path)
			if got != tt.want {
				t.Errorf("extractSessionID(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsUUIDLike(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{uuid.New().String(), true},
		{"not-a-uuid", false},
		{"", false},
		{"12345678-1234-1234-1234-123456789012", true},
	}
	for _, tt := range tests {
		if got := isUUIDLike(tt.input); got != tt.want {
			t.Errorf("isUUIDLike(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestAuditRecorderFunc(t *testing.T) {
	var called bool
	fn := AuditRecorderFunc(func(entry AuditEntry) error {
		called = true
		return nil
	})

	err := fn.RecordAccess(AuditEntry{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected function to be called")
	}
}
