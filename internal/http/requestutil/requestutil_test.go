package requestutil

import (
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestID(t *testing.T) {
	if got := SanitizeRequestID("valid-id_123"); got != "valid-id_123" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := SanitizeRequestID("has spaces"); got == "has spaces" || got == "" {
		t.Fatalf("expected generated id, got %q", got)
	}
	if got := SanitizeRequestID(""); got == "" {
		t.Fatal("expected generated id for empty input")
	}
}

func TestNewRequestIDUnique(t *testing.T) {
	a, b := NewRequestID(), NewRequestID()
	if a == "" || a == b {
		t.Fatalf("expected distinct ids, got %q and %q", a, b)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	if got := ClientIP(req); got != "10.0.0.1:1234" {
		t.Fatalf("expected remote addr, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := ClientIP(req); got != "203.0.113.7" {
		t.Fatalf("expected first forwarded ip, got %q", got)
	}

	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %q", got)
	}
}
