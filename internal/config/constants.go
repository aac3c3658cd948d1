package config

import "time"

const (
	envPort            = "PORT"
	envDataSource      = "DATA_SOURCE"
	envDataDir         = "DATA_DIR"
	envDataBaseURL     = "DATA_BASE_URL"
	envDataTimeout     = "DATA_TIMEOUT"
	envRetryAttempts   = "SOURCE_RETRY_ATTEMPTS"
	envRetryBackoff    = "SOURCE_RETRY_BACKOFF"
	envSourcesFile     = "SOURCES_FILE"
	envRefreshInterval = "REFRESH_INTERVAL"
	envTeamName        = "TEAM_NAME"
	envRecentLimit     = "RECENT_GAMES_LIMIT"
	envStripLimit      = "STRIP_GAMES_LIMIT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"

	defaultPort        = "4000"
	defaultDataSource  = SourceFile
	defaultDataDir     = "data"
	defaultDataTimeout = 10 * time.Second
	// One attempt means no retries unless an operator opts in.
	defaultRetryAttempts = 1
	defaultRetryBackoff  = 200 * time.Millisecond
	// Zero disables periodic reloads; the dashboard loads once at boot.
	defaultRefreshInterval = Duration(0)
	defaultTeamName        = "St. Bonaventure"
	defaultRecentLimit     = 5
	defaultStripLimit      = 12
	defaultMetricsPort     = "9090"
	defaultServiceName     = "recruiting-dashboard-service"
)

// Source kinds accepted by DATA_SOURCE.
const (
	SourceFile = "file"
	SourceHTTP = "http"
)
