package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteDocuments writes docs into a temp directory and returns its path.
func WriteDocuments(t *testing.T, docs map[string][]byte) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range docs {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, body, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

// Without returns a copy of docs minus the named documents.
func Without(docs map[string][]byte, names ...string) map[string][]byte {
	out := make(map[string][]byte, len(docs))
	for k, v := range docs {
		out[k] = v
	}
	for _, name := range names {
		delete(out, name)
	}
	return out
}
