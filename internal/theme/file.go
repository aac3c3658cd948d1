package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists the preference as a one-line file.
type FileStore struct {
	path string
}

// NewFileStore stores the preference at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath is <user config dir>/<app>/themeMode.
func DefaultPath(app string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, app, StorageKey), nil
}

// Path returns the file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored value. A missing file is not an error.
func (s *FileStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read theme preference: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Resolve loads the stored value and resolves it against prefersDark.
func (s *FileStore) Resolve(prefersDark bool) (Mode, error) {
	stored, err := s.Load()
	if err != nil {
		return Resolve("", prefersDark), err
	}
	return Resolve(stored, prefersDark), nil
}

// Save writes mode, creating the parent directory.
func (s *FileStore) Save(mode Mode) error {
	if _, ok := Parse(string(mode)); !ok {
		return fmt.Errorf("invalid theme mode %q", mode)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create theme dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(string(mode)+"\n"), 0o644); err != nil {
		return fmt.Errorf("write theme preference: %w", err)
	}
	return nil
}
