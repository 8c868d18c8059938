package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	require.NotNil(t, logger)

	logger.Info("test message")
	assert.Contains(t, buf.String(), "test message")
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.DebugLevel))
	require.NotNil(t, prog)

	time.Sleep(10 * time.Millisecond)
	prog.done("Converted seq.puml")

	assert.Contains(t, buf.String(), "Converted seq.puml")
}

func TestProgressQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Converted seq.puml")

	assert.Empty(t, buf.String(), "progress is only reported at debug level")
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(context.Background(), custom)
	assert.Same(t, custom, loggerFromContext(ctx))

	loggerFromContext(ctx).Info("test")
	assert.NotZero(t, buf.Len(), "custom logger should write to its buffer")
}

func TestLoggerFromContextDefault(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.DebugLevel))
	hooks := NewLogHooks()

	hooks.OnRead(ctx, "seq.puml", 42, nil)
	hooks.OnRenderStart(ctx, "seq.puml")
	hooks.OnRenderComplete(ctx, "seq.puml", 1024, 1500*time.Millisecond, nil)

	out := buf.String()
	for _, want := range []string{"read source", "bytes=42", "rendered", "svg_bytes=1024", "took=1.5s"} {
		assert.Contains(t, out, want)
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.InfoLevel))

	NewLogHooks().OnRenderComplete(ctx, "seq.puml", 0, time.Second, context.DeadlineExceeded)

	assert.Empty(t, buf.String(), "hooks only log at debug level")
}
