// Package observability provides hooks for metrics and tracing.
//
// Hooks let a host process instrument splitviz runs without this module
// depending on a particular backend. Register them once at startup:
//
//	observability.SetPipelineHooks(&myPipelineHooks{})
//
// The pipeline then reports each stage:
//
//	observability.Pipeline().OnStreamStart(ctx, run)
//	// ... read the stream ...
//	observability.Pipeline().OnStreamComplete(ctx, run, lines, directives, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the rendering pipeline. Implementations
// must not block; the pipeline calls them inline.
type PipelineHooks interface {
	// Stream events
	OnStreamStart(ctx context.Context, run string)
	OnStreamComplete(ctx context.Context, run string, lines, directives int, duration time.Duration, err error)

	// Render events. path is empty when err is set.
	OnRenderComplete(ctx context.Context, run, path string, duration time.Duration, err error)

	// Show events. shown is false when the viewer was unavailable.
	OnShowComplete(ctx context.Context, run string, shown bool, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnStreamStart(context.Context, string) {}
func (NoopPipelineHooks) OnStreamComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, string, time.Duration, error) {}
func (NoopPipelineHooks) OnShowComplete(context.Context, string, bool, time.Duration, error)     {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. A nil h is ignored.
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

// Reset restores the no-op defaults. Tests use it to undo registrations.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
