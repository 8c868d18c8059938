// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about each conversion.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for conversion events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Pipeline().OnRenderStart(ctx, path)
//	// ... run PlantUML ...
//	observability.Pipeline().OnRenderComplete(ctx, path, len(svg), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the conversion pipeline.
type PipelineHooks interface {
	// OnRead records that the diagram source was loaded.
	OnRead(ctx context.Context, path string, size int, err error)

	// Render events
	OnRenderStart(ctx context.Context, path string)
	OnRenderComplete(ctx context.Context, path string, size int, duration time.Duration, err error)

	// OnConvertComplete records the end of a conversion, successful or not.
	OnConvertComplete(ctx context.Context, path string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnRead(context.Context, string, int, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)      {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnConvertComplete(context.Context, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any conversion.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
