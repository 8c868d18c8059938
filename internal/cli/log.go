package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/puml2drawio/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level along with the elapsed time since progress was created.
// Example output: "Converted sequence.puml (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// LogHooks reports pipeline events through the logger carried on the
// conversion context. Everything is logged at debug level.
type LogHooks struct {
	observability.NoopPipelineHooks
}

// NewLogHooks returns pipeline hooks for registration in main.
func NewLogHooks() *LogHooks {
	return &LogHooks{}
}

func (LogHooks) OnRead(ctx context.Context, path string, size int, err error) {
	if err != nil {
		return
	}
	loggerFromContext(ctx).Debug("read source", "path", path, "bytes", size)
}

func (LogHooks) OnRenderComplete(ctx context.Context, path string, size int, d time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug("render failed", "path", path, "after", d.Round(time.Millisecond), "err", err)
		return
	}
	l.Debug("rendered", "path", path, "svg_bytes", size, "took", d.Round(time.Millisecond))
}
