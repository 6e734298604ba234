// Package logger provides structured JSON logging for the prediction
// service, with optional export to an OpenTelemetry collector via the
// slog bridge.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

var (
	programLevel = new(slog.LevelVar)

	// shutdownFunc flushes the OTEL pipeline; nil when logging to stdout.
	shutdownFunc func(context.Context) error
)

func init() {
	programLevel.Set(slog.LevelInfo)
	setupJSONLogging()
}

// Setup configures the process logger. With otelEnabled it exports records
// over OTLP/gRPC; otherwise it writes JSON to stdout. Falls back to JSON
// if the OTEL pipeline cannot be created.
func Setup(ctx context.Context, level string, otelEnabled bool, serviceName string) error {
	parsed, err := ParseLevel(level)
	if err != nil {
		parsed = slog.LevelInfo
	}
	programLevel.Set(parsed)

	if !otelEnabled {
		setupJSONLogging()
		return err
	}

	shutdown, otelErr := setupOTELLogging(ctx, serviceName)
	if otelErr != nil {
		fmt.Fprintf(os.Stderr, "failed to set up OTEL logging, falling back to JSON: %v\n", otelErr)
		setupJSONLogging()
		return err
	}
	shutdownFunc = shutdown
	return err
}

func setupJSONLogging() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: programLevel})
	slog.SetDefault(slog.New(handler))
}

func setupOTELLogging(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)

	otelHandler := otelslog.NewHandler(serviceName, otelslog.WithLoggerProvider(provider))
	slog.SetDefault(slog.New(&levelHandler{level: programLevel, handler: otelHandler}))

	return provider.Shutdown, nil
}

// levelHandler filters records by level before the OTEL bridge, which does
// no filtering of its own.
type levelHandler struct {
	level   slog.Leveler
	handler slog.Handler
}

func (h *levelHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *levelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.handler.Handle(ctx, r)
}

func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{level: h.level, handler: h.handler.WithAttrs(attrs)}
}

func (h *levelHandler) WithGroup(name string) slog.Handler {
	return &levelHandler{level: h.level, handler: h.handler.WithGroup(name)}
}

// Shutdown flushes any buffered OTEL records. Call during process shutdown;
// a no-op when logging to stdout.
func Shutdown(ctx context.Context) error {
	if shutdownFunc != nil {
		return shutdownFunc(ctx)
	}
	return nil
}

// SetLevel sets the minimum log level.
func SetLevel(level slog.Level) {
	programLevel.Set(level)
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(levelStr string) (slog.Level, error) {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s (defaulting to INFO)", levelStr)
	}
}

// Debug logs a debug-level message.
func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

// Info logs an info-level message.
func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

// Warn logs a warning-level message.
func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

// Error logs an error-level message.
func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}

// Fatal logs an error-level message, flushes OTEL if enabled, and exits.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	if shutdownFunc != nil {
		_ = shutdownFunc(context.Background())
	}
	os.Exit(1)
}
