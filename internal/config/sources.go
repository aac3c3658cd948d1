package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/sources"
)

// SourceConfig selects where the dashboard documents come from.
type SourceConfig struct {
	Kind          string
	Dir           string
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts int
	RetryBackoff  time.Duration
	ManifestPath  string
	Documents     sources.Documents
}

// Manifest is the YAML file named by SOURCES_FILE. Any field it sets
// overrides the matching environment value.
type Manifest struct {
	Source    string            `yaml:"source"`
	Dir       string            `yaml:"dir"`
	BaseURL   string            `yaml:"base_url"`
	Documents ManifestDocuments `yaml:"documents"`
}

// ManifestDocuments renames individual documents; blank entries keep the
// default name.
type ManifestDocuments struct {
	Team               string `yaml:"team"`
	TransfersAvailable string `yaml:"transfers_available"`
	TransfersCommitted string `yaml:"transfers_committed"`
	International      string `yaml:"international"`
	Rankings           string `yaml:"rankings"`
}

func loadSource() (SourceConfig, error) {
	cfg := SourceConfig{
		Kind:          strings.ToLower(strings.TrimSpace(envOrDefault(envDataSource, defaultDataSource))),
		Dir:           envOrDefault(envDataDir, defaultDataDir),
		BaseURL:       envOrDefault(envDataBaseURL, ""),
		Timeout:       durationEnvOrDefault(envDataTimeout, defaultDataTimeout),
		RetryAttempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		RetryBackoff:  durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
		ManifestPath:  envOrDefault(envSourcesFile, ""),
		Documents:     sources.DefaultDocuments(),
	}
	if cfg.ManifestPath == "" {
		return cfg, nil
	}

	m, err := ReadManifest(cfg.ManifestPath)
	if err != nil {
		return SourceConfig{}, err
	}
	return m.apply(cfg), nil
}

// ReadManifest parses a sources manifest from disk.
func ReadManifest(path string) (Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return ParseManifest(raw)
}

// ParseManifest decodes manifest YAML. Unknown keys are rejected so typos
// do not silently fall back to defaults.
func ParseManifest(raw []byte) (Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Manifest{}, nil
		}
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(m.Source)) {
	case "", SourceFile, SourceHTTP:
	default:
		return Manifest{}, fmt.Errorf("parse manifest: unknown source %q", m.Source)
	}
	return m, nil
}

// DocumentNames converts the manifest entries to sources.Documents with
// defaults for blank names.
func (m Manifest) DocumentNames() sources.Documents {
	return sources.Documents{
		Team:               strings.TrimSpace(m.Documents.Team),
		TransfersAvailable: strings.TrimSpace(m.Documents.TransfersAvailable),
		TransfersCommitted: strings.TrimSpace(m.Documents.TransfersCommitted),
		International:      strings.TrimSpace(m.Documents.International),
		Rankings:           strings.TrimSpace(m.Documents.Rankings),
	}.WithDefaults()
}

func (m Manifest) apply(cfg SourceConfig) SourceConfig {
	if s := strings.ToLower(strings.TrimSpace(m.Source)); s != "" {
		cfg.Kind = s
	}
	if m.Dir != "" {
		cfg.Dir = m.Dir
	}
	if m.BaseURL != "" {
		cfg.BaseURL = m.BaseURL
	}
	cfg.Documents = m.DocumentNames()
	return cfg
}
