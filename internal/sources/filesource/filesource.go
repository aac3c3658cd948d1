// Package filesource reads dashboard documents from a local directory.
package filesource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/sources"
)

// Name identifies this source in logs and errors.
const Name = "file"

// Source serves documents from a directory.
type Source struct {
	basePath string
}

// New constructs a Source rooted at basePath.
func New(basePath string) *Source {
	return &Source{basePath: basePath}
}

// BasePath returns the directory documents are read from.
func (s *Source) BasePath() string {
	return s.basePath
}

// Fetch reads {basePath}/{name}. Missing files become a 404 StatusError
// so callers treat them like an unavailable HTTP document.
func (s *Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	if s == nil {
		return nil, errors.New("filesource: not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel := filepath.FromSlash(name)
	if !filepath.IsLocal(rel) {
		return nil, &sources.StatusError{
			Source:     Name,
			Document:   name,
			StatusCode: http.StatusBadRequest,
			Message:    "document name escapes data directory",
		}
	}

	body, err := os.ReadFile(filepath.Join(s.basePath, rel))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &sources.StatusError{
				Source:     Name,
				Document:   name,
				StatusCode: http.StatusNotFound,
				Message:    "not found",
			}
		}
		return nil, fmt.Errorf("filesource: read %s: %w", name, err)
	}
	return body, nil
}
