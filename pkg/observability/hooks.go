// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about conversions and scratch storage.
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
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnConvertStart(ctx, "gml", "graphml")
//	// ... convert ...
//	observability.Pipeline().OnConvertComplete(ctx, "gml", "graphml", stats, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// Counts summarizes the records of one conversion.
type Counts struct {
	Nodes int
	Edges int
	Attrs int
	Keys  int
}

// PipelineHooks receives events from the conversion pipeline.
type PipelineHooks interface {
	OnConvertStart(ctx context.Context, from, to string)
	OnConvertComplete(ctx context.Context, from, to string, counts Counts, duration time.Duration, err error)
}

// =============================================================================
// Spool Hooks
// =============================================================================

// SpoolHooks receives events about the GraphML body buffer.
type SpoolHooks interface {
	// OnSpill records a body that outgrew memory and went to a temp file.
	OnSpill(ctx context.Context, size int64)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnConvertStart(context.Context, string, string) {}
func (NoopPipelineHooks) OnConvertComplete(context.Context, string, string, Counts, time.Duration, error) {
}

// NoopSpoolHooks is a no-op implementation of SpoolHooks.
type NoopSpoolHooks struct{}

func (NoopSpoolHooks) OnSpill(context.Context, int64) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	spoolHooks    SpoolHooks    = NoopSpoolHooks{}
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

// SetSpoolHooks registers custom spool hooks.
func SetSpoolHooks(h SpoolHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		spoolHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Spool returns the registered spool hooks.
func Spool() SpoolHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return spoolHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	spoolHooks = NoopSpoolHooks{}
}
