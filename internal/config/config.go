package config

import "fmt"

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port            string
	RefreshInterval Duration
	Source          SourceConfig
	Dashboard       DashboardConfig
	Metrics         MetricsConfig
	Log             LogConfig
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible
// defaults. It fails only when SOURCES_FILE names a manifest that cannot be
// read or parsed.
func Load() (Config, error) {
	src, err := loadSource()
	if err != nil {
		return Config{}, fmt.Errorf("load sources: %w", err)
	}
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		RefreshInterval: durationEnvAllowZero(envRefreshInterval, defaultRefreshInterval),
		Source:          src,
		Dashboard:       loadDashboard(),
		Metrics:         loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, ""),
			Format: envOrDefault(envLogFormat, ""),
		},
	}, nil
}
