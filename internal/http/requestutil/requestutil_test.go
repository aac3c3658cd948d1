package requestutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestID(t *testing.T) {
	if got := SanitizeRequestID("valid-123"); got != "valid-123" {
		t.Fatalf("expected pass-through, got %s", got)
	}
	if got := SanitizeRequestID("bad id"); got == "" || got == "bad id" {
		t.Fatalf("expected sanitized id, got %s", got)
	}
	if got := NewRequestID(); len(got) != 16 {
		t.Fatalf("expected 16 hex chars, got %q", got)
	}
	useFallback.Store(true)
	defer useFallback.Store(false)
	if got := NewRequestID(); got == "" {
		t.Fatalf("expected fallback request id when RNG is unavailable")
	}
}

func TestClientIP(t *testing.T) {
	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	if got := ClientIP(req); got != "1.2.3.4" {
		t.Fatalf("expected first forwarded address, got %s", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:1234"
	if got := ClientIP(req); got != "9.9.9.9:1234" {
		t.Fatalf("expected remote addr fallback, got %s", got)
	}
}

func TestPositiveIntParam(t *testing.T) {
	cases := []struct {
		query  string
		want   int
		wantOK bool
	}{
		{"", 0, true},
		{"?limit=3", 3, true},
		{"?limit=%203%20", 3, true},
		{"?limit=500", 50, true},
		{"?limit=0", 0, false},
		{"?limit=-1", 0, false},
		{"?limit=ten", 0, false},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/schedule"+tc.query, nil)
		got, ok := PositiveIntParam(req, "limit", 50)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("%q: expected (%d, %v), got (%d, %v)", tc.query, tc.want, tc.wantOK, got, ok)
		}
	}
}
