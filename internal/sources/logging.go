package sources

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/logging"
)

// logFetch tags a fetch log entry with the backend and document names.
func logFetch(ctx context.Context, logger *slog.Logger, level slog.Level, source, document, msg string, args ...any) {
	args = append(args,
		slog.String(logging.FieldSource, source),
		slog.String(logging.FieldDocument, document),
	)
	logging.Log(ctx, logger, level, msg, args...)
}
