package logger

import (
	"context"
	"log/slog"
)

// The Safe* helpers log through the global logger but tolerate it not being
// initialized yet (early startup, unit tests that skip InitLogger).

func SafeInfo(msg string, args ...any) {
	if Logger != nil {
		Logger.Info(msg, args...)
	}
}

func SafeWarn(msg string, args ...any) {
	if Logger != nil {
		Logger.Warn(msg, args...)
	}
}

func SafeError(msg string, args ...any) {
	if Logger != nil {
		Logger.Error(msg, args...)
	}
}

func SafeInfoContext(ctx context.Context, msg string, args ...any) {
	if Logger != nil {
		Logger.InfoContext(ctx, msg, args...)
	}
}

func SafeWarnContext(ctx context.Context, msg string, args ...any) {
	if Logger != nil {
		Logger.WarnContext(ctx, msg, args...)
	}
}

func SafeErrorContext(ctx context.Context, msg string, args ...any) {
	if Logger != nil {
		Logger.ErrorContext(ctx, msg, args...)
	}
}

// WithFallback returns the global logger, or a no-op-leaning default when
// it has not been initialized.
func WithFallback() *slog.Logger {
	if Logger != nil {
		return Logger
	}
	return slog.Default()
}
