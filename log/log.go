package log

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var (
	infoLogger  *slog.Logger
	errorLogger *slog.Logger

	infoLevel = new(slog.LevelVar)
)

// Init initializes the info and error loggers inside the given directory.
// Logging stays disabled when Init is never called, so one-shot commands
// do not litter log files.
func Init(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log dir: %w", err)
	}

	infoFile, err := os.OpenFile(filepath.Join(dir, "portal-info.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open portal-info.log: %w", err)
	}

	errorFile, err := os.OpenFile(filepath.Join(dir, "portal-error.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open portal-error.log: %w", err)
	}

	infoLogger = slog.New(slog.NewTextHandler(infoFile, &slog.HandlerOptions{
		Level: infoLevel,
	}))

	errorLogger = slog.New(slog.NewTextHandler(errorFile, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	return nil
}

// EnableDebug lowers the info logger to debug level.
func EnableDebug() {
	infoLevel.Set(slog.LevelDebug)
}

// Infof logs an info-level message with format string and arguments
func Infof(ctx context.Context, format string, args ...interface{}) {
	if infoLogger == nil {
		return
	}
	message := fmt.Sprintf(format, args...)
	infoLogger.InfoContext(ctx, message)
}

// Errorf logs an error-level message with format string and arguments
func Errorf(ctx context.Context, format string, args ...interface{}) {
	if errorLogger == nil {
		return
	}
	message := fmt.Sprintf(format, args...)
	errorLogger.ErrorContext(ctx, message)
}

// Debugf logs a debug-level message, dropped unless EnableDebug was called
func Debugf(ctx context.Context, format string, args ...interface{}) {
	if infoLogger == nil {
		return
	}
	message := fmt.Sprintf(format, args...)
	infoLogger.DebugContext(ctx, message)
}

// Warnf logs a warning through the info logger.
func Warnf(ctx context.Context, format string, args ...interface{}) {
	if infoLogger == nil {
		return
	}
	message := fmt.Sprintf(format, args...)
	infoLogger.WarnContext(ctx, message)
}

// SetInfoOutput sets a custom writer for info logs (useful for testing)
func SetInfoOutput(w io.Writer) {
	infoLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// SetErrorOutput sets a custom writer for error logs (useful for testing)
func SetErrorOutput(w io.Writer) {
	errorLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// JSON wraps a value so it is marshaled lazily when the log line is written.
func JSON(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	if j, ok := v.(jsonValue); ok {
		return j
	}
	return jsonValue{value: v}
}

type jsonValue struct {
	value interface{}
}

func (c jsonValue) String() string {
	b, err := json.Marshal(c.value)
	if err != nil {
		return fmt.Sprintf("json.Marshal error: %v", err)
	}
	return string(b)
}
