package server

import (
	"log/slog"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/config"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/logging"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/metrics"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/sources"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/sources/filesource"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/sources/httpsource"
)

// userAgent is sent with HTTP document requests.
const userAgent = "recruiting-dashboard-service"

// selectSource picks the document backend named by DATA_SOURCE, falling
// back to the filesystem for unknown kinds.
func selectSource(cfg config.SourceConfig, logger *slog.Logger) (sources.Source, string) {
	switch cfg.Kind {
	case config.SourceFile, "":
		return filesource.New(cfg.Dir), filesource.Name
	case config.SourceHTTP:
		return httpsource.NewClient(httpsource.Config{
			BaseURL:   cfg.BaseURL,
			Timeout:   cfg.Timeout,
			UserAgent: userAgent,
		}), httpsource.Name
	default:
		logging.Warn(logger, "unknown data source, falling back to file", slog.String(logging.FieldSource, cfg.Kind))
		return filesource.New(cfg.Dir), filesource.Name
	}
}

// NewSource builds the configured document source wrapped with retry and
// fetch metrics.
func NewSource(cfg config.SourceConfig, logger *slog.Logger, recorder *metrics.Recorder) sources.Source {
	base, name := selectSource(cfg, logger)
	return sources.NewRetrying(base, logger, recorder, name, cfg.RetryAttempts, cfg.RetryBackoff)
}
