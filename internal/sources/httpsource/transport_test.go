package httpsource

import (
	"net/http"
	"testing"
	"time"
)

func TestNormalizeBaseURL(t *testing.T) {
	if got := normalizeBaseURL(""); got != defaultBaseURL {
		t.Fatalf("expected default base url, got %s", got)
	}
	if got := normalizeBaseURL(" https://cdn.example.com/data/ "); got != "https://cdn.example.com/data" {
		t.Fatalf("expected trimmed base url, got %s", got)
	}
}

func TestDocumentURLJoinsOnce(t *testing.T) {
	if got := documentURL("https://x/data", "/team.json"); got != "https://x/data/team.json" {
		t.Fatalf("unexpected url %s", got)
	}
}

func TestResolveHTTPClient(t *testing.T) {
	custom := &http.Client{}
	if got := resolveHTTPClient(custom, time.Second); got != custom {
		t.Fatalf("expected custom client to be used")
	}
	got, ok := resolveHTTPClient(nil, 0).(*http.Client)
	if !ok || got.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout client, got %+v", got)
	}
	got, _ = resolveHTTPClient(nil, 3*time.Second).(*http.Client)
	if got.Timeout != 3*time.Second {
		t.Fatalf("expected configured timeout, got %s", got.Timeout)
	}
}
