package logging

import (
	"context"
	"log/slog"
)

// Log writes through the context's logger, falling back to logger. It does
// nothing when neither is set.
func Log(ctx context.Context, logger *slog.Logger, level slog.Level, msg string, args ...any) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger = FromContext(ctx, logger)
	if logger == nil {
		return
	}
	logger.Log(ctx, level, msg, args...)
}

func Debug(logger *slog.Logger, msg string, args ...any) {
	Log(context.Background(), logger, slog.LevelDebug, msg, args...)
}

func Info(logger *slog.Logger, msg string, args ...any) {
	Log(context.Background(), logger, slog.LevelInfo, msg, args...)
}

func Warn(logger *slog.Logger, msg string, args ...any) {
	Log(context.Background(), logger, slog.LevelWarn, msg, args...)
}

// Error logs at error level with err under FieldError.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, slog.Any(FieldError, err))
	}
	Log(context.Background(), logger, slog.LevelError, msg, args...)
}
