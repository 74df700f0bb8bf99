// Package logging provides a shared, structured logger for the cli-studies application.
//
// It exposes the standard library's [log/slog] API backed by a
// charmbracelet/log handler, and provides a single initialization point so
// all components share the same output handler and log level. The log level
// can be controlled at startup via the CLI_STUDIES_LOG_LEVEL environment
// variable (debug, info, warn, error) and raised later with SetLevel.
// If unset, the default level is INFO.
//
// Usage:
//
//	log := logging.New("config")       // creates a logger tagged with component="config"
//	log.Info("loaded config", "path", p)
//	log.Error("failed to save", "error", err)
//
// Log output goes to stderr until SetOutput redirects it, which the CLI does
// for as long as the terminal UI owns the screen.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvLevel names the environment variable read on first use.
const EnvLevel = "CLI_STUDIES_LOG_LEVEL"

var (
	// initLogger ensures the base logger is created exactly once across all
	// goroutines, even if multiple components call New concurrently.
	initLogger sync.Once

	// baseLogger is the singleton logger instance shared by all components.
	// Component-specific loggers are derived from this via With().
	baseLogger *slog.Logger

	// level gates every derived logger, so SetLevel reaches loggers that were
	// created before it was called.
	level slog.LevelVar

	// output is the destination shared by every derived logger.
	output = &swapWriter{w: os.Stderr}
)

// swapWriter is an io.Writer whose destination can be replaced while
// loggers built on it stay valid.
type swapWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *swapWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *swapWriter) swap(w io.Writer) io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.w
	s.w = w
	return prev
}

// New returns a structured logger scoped to the given component name.
//
// The component name is added as a "component" attribute to every log entry
// produced by the returned logger, making it easy to filter logs by subsystem
// (e.g. "app", "config", "cli").
//
// If component is empty, the base logger is returned without any additional
// attributes. The underlying base logger is lazily initialized on the first
// call and reused for all subsequent calls.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		level.Set(parseLevel(os.Getenv(EnvLevel)))
		baseLogger = slog.New(newHandler(output, &level))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// SetLevel changes the minimum level of every logger returned by New.
func SetLevel(l slog.Level) {
	New("")
	level.Set(l)
}

// SetOutput sends every logger returned by New to w and returns the previous
// destination. A nil w discards output.
func SetOutput(w io.Writer) io.Writer {
	if w == nil {
		w = io.Discard
	}
	New("")
	return output.swap(w)
}

// Level returns the current minimum level.
func Level() slog.Level {
	return level.Level()
}

// newHandler builds the charmbracelet/log handler writing to w. Timestamps
// are formatted as "HH:MM:SS.ms" (e.g. "14:32:01.45").
func newHandler(w io.Writer, leveler slog.Leveler) slog.Handler {
	charm := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.DebugLevel,
	})
	return levelHandler{Handler: charm, leveler: leveler}
}

// levelHandler filters records against a shared leveler before handing them
// to the wrapped handler.
type levelHandler struct {
	slog.Handler
	leveler slog.Leveler
}

func (h levelHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return l >= h.leveler.Level() && h.Handler.Enabled(ctx, l)
}

func (h levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelHandler{Handler: h.Handler.WithAttrs(attrs), leveler: h.leveler}
}

func (h levelHandler) WithGroup(name string) slog.Handler {
	return levelHandler{Handler: h.Handler.WithGroup(name), leveler: h.leveler}
}

// parseLevel converts a human-readable log level string to a [slog.Level].
//
// Recognized values (case-insensitive, whitespace-trimmed):
//   - "debug"           → slog.LevelDebug
//   - "warn", "warning" → slog.LevelWarn
//   - "error"           → slog.LevelError
//   - anything else     → slog.LevelInfo (the default)
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
