package app

import (
	"log/slog"

	apperrors "github.com/treykane/cli-studies/internal/errors"
	"github.com/treykane/cli-studies/internal/logging"
)

// appLog is the package-level structured logger for the app package.
//
// It is pre-configured with the component tag "app" so that all log entries
// produced by this package are easily identifiable in log output. It records
// filter diagnostics, rejected layout and toolbar operations, and the
// significant state changes of the browser (viewer opened, layout committed).
//
// The log level is controlled by the CLI_STUDIES_LOG_LEVEL environment
// variable and the --verbose flag (see the logging package for details). All
// output is written to stderr so it does not interfere with the Bubble Tea
// terminal UI on stdout.
var appLog = logging.New("app")

// setStatusError updates the status bar with a user-facing error message and
// simultaneously logs a structured error entry with full context.
//
// This is the standard way to handle errors that should be both visible to the
// user (via the footer status bar) and recorded in logs (for debugging). The
// status parameter is displayed verbatim in the UI, while the err and any
// additional key-value attrs are included only in the log entry.
//
// Usage:
//
//	m.setStatusError("Unknown layout", err, "preset", name)
//
// The error itself is always logged under the "error" key, and its code under
// "code" when it carries one.
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	m.statusIsError = true
	appLog.Error(status, errorFields(err, attrs)...)
}

// setStatusInputError reports a problem with input the user is still
// editing, such as a half-typed date. It is shown like an error but logged
// at debug level only.
func (m *Model) setStatusInputError(status string, err error, attrs ...any) {
	m.status = status
	m.statusIsError = true
	appLog.Debug(status, errorFields(err, attrs)...)
}

func errorFields(err error, attrs []any) []any {
	fields := make([]any, 0, len(attrs)+4)
	fields = append(fields, slog.Any("error", err))
	if code := apperrors.GetCode(err); code != "" {
		fields = append(fields, slog.String("code", string(code)))
	}
	return append(fields, attrs...)
}

// setStatus replaces the status bar text with an informational message.
func (m *Model) setStatus(status string) {
	m.status = status
	m.statusIsError = false
}
