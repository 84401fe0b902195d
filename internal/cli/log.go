// Package cli implements the graphconv command-line interface.
//
// This package provides commands for converting graphs between GML and
// GraphML, normalizing GML files, and drawing graphs as node-link
// diagrams. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - convert: Transcode GML to GraphML or back, detecting formats from extensions
//   - normalize: Rewrite a GML file with empty and NaN values dropped
//   - render: Draw a GML or GraphML graph as DOT, SVG, PDF, or PNG
//
// # Input and Output
//
// Every command reads a file or "-" for stdin and writes a file or "-" for
// stdout. Status lines go to stderr so that stdout can be piped.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w at level. Debug output also
// reports the calling function, which helps when tracing a conversion.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Prefix:          appName,
		Level:           level,
	})
	l.SetReportCaller(level <= log.DebugLevel)
	return l
}

type ctxKey struct{}

// withLogger attaches l to ctx for the command's helpers.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
