package filesource

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/sources"
)

func TestFetchReadsDocument(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "rsci.json"), []byte(`[]`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	body, err := New(dir).Fetch(context.Background(), "rsci.json")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(body) != `[]` {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestFetchMissingFileIsNotFound(t *testing.T) {
	_, err := New(t.TempDir()).Fetch(context.Background(), "rsci.json")
	statusErr, ok := sources.AsStatusError(err)
	if !ok || !statusErr.NotFound() {
		t.Fatalf("expected 404 status error, got %v", err)
	}
	if statusErr.Source != Name || statusErr.Document != "rsci.json" {
		t.Fatalf("unexpected status error %+v", statusErr)
	}
}

func TestFetchRejectsTraversal(t *testing.T) {
	_, err := New(t.TempDir()).Fetch(context.Background(), "../secrets.json")
	statusErr, ok := sources.AsStatusError(err)
	if !ok || statusErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 status error, got %v", err)
	}
}

func TestFetchHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(t.TempDir()).Fetch(ctx, "team.json"); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestNilSourceErrors(t *testing.T) {
	var s *Source
	if _, err := s.Fetch(context.Background(), "team.json"); err == nil {
		t.Fatalf("expected error from nil source")
	}
}
