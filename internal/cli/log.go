// Package cli implements the graphops command-line interface.
//
// This package provides commands for analyzing and rewriting dependency
// graph snapshots: tag inspection, strongly-connected components, cycle
// reporting, purification, filtering, pruning, DOT emission and CSV export.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands, all operating on *.graph.json snapshots:
//   - tags: summarize tag usage across a graph
//   - scc: compute strongly-connected components and their quotient graph
//   - cycles: report cyclic dependencies
//   - purify: drop edges implied by longer paths (plain or SCC mode)
//   - filter: keep or drop nodes by tag
//   - prune: remove an edge, a fan-in, a fan-out, or a node
//   - dot: emit GraphViz DOT, optionally rendered to SVG or PNG
//   - supergraph: quotient a graph by a node property
//   - csv: export the node list as CSV
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the CLI logger: timestamped, filtered at level,
// writing to w (stderr in practice).
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}

// progress times one named operation. A command step creates one up front
// and reports through done exactly once when the step finishes.
type progress struct {
	logger *log.Logger
	op     string
	start  time.Time
}

// startProgress begins timing the named operation.
func startProgress(l *log.Logger, op string) *progress {
	return &progress{logger: l, op: op, start: time.Now()}
}

// done logs the formatted result prefixed with the operation name and
// suffixed with the elapsed time, rounded to milliseconds.
// Example output: "purify: 3 redundant edges removed (12ms)"
func (p *progress) done(format string, args ...any) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Infof("%s: %s (%s)", p.op, fmt.Sprintf(format, args...), elapsed)
}

// loggerContextKey keys the logger attached to a command context.
type loggerContextKey struct{}

// withLogger attaches l to ctx for retrieval by loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, l)
}

// loggerFromContext returns the logger attached to ctx, falling back to
// the package default so a missing logger never breaks a command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerContextKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
