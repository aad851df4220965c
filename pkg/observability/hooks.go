// Package observability provides hooks for metrics, tracing, and logging.
//
// The resolvers themselves are pure functions; the pipeline reports what
// happened during a resolve pass through the hooks registered here. No
// backend is linked in: consumers register implementations at startup and
// everything else talks to the registry.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetResolveHooks(&myResolveHooks{})
//	    observability.SetTreeHooks(&myTreeHooks{})
//	    // ... run application
//	}
//
// The pipeline emits events:
//
//	observability.Pipeline().OnResolveStart(ctx, chart, len(series))
//	// ... resolve ...
//	observability.Pipeline().OnResolveComplete(ctx, chart, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events about whole resolve and render passes.
type PipelineHooks interface {
	OnResolveStart(ctx context.Context, chart string, seriesCount int)
	OnResolveComplete(ctx context.Context, chart string, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, duration time.Duration, err error)
}

// =============================================================================
// Resolve Hooks
// =============================================================================

// ResolveHooks receives per-series events from point and marker resolution.
type ResolveHooks interface {
	// OnPrepare records a prepared series.
	OnPrepare(ctx context.Context, series string, stacked bool, valueStart float64)

	// OnStackFallback records a stacked row whose stacked-over value was NaN
	// and which was drawn from the origin instead.
	OnStackFallback(ctx context.Context, series string, row int)

	// OnMarkerUndrawable records a marker that resolved to a NaN point.
	OnMarkerUndrawable(ctx context.Context, series, marker string)
}

// =============================================================================
// Tree Hooks
// =============================================================================

// TreeHooks receives events from hierarchy aggregation and navigation.
type TreeHooks interface {
	// OnComplete records a finished aggregation pass.
	OnComplete(ctx context.Context, nodes, clamped int, duration time.Duration)

	// OnClamp records a node whose negative value was corrected to zero.
	OnClamp(ctx context.Context, node string, value float64)

	// OnViewRootReset records a view-root validation. fellBack is true when
	// the requested node was rejected in favour of the true root.
	OnViewRootReset(ctx context.Context, requested string, fellBack bool)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnResolveStart(context.Context, string, int)                         {}
func (NoopPipelineHooks) OnResolveComplete(context.Context, string, time.Duration, error)     {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, time.Duration, error)      {}

// NoopResolveHooks is a no-op implementation of ResolveHooks.
type NoopResolveHooks struct{}

func (NoopResolveHooks) OnPrepare(context.Context, string, bool, float64)   {}
func (NoopResolveHooks) OnStackFallback(context.Context, string, int)       {}
func (NoopResolveHooks) OnMarkerUndrawable(context.Context, string, string) {}

// NoopTreeHooks is a no-op implementation of TreeHooks.
type NoopTreeHooks struct{}

func (NoopTreeHooks) OnComplete(context.Context, int, int, time.Duration) {}
func (NoopTreeHooks) OnClamp(context.Context, string, float64)            {}
func (NoopTreeHooks) OnViewRootReset(context.Context, string, bool)       {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	resolveHooks  ResolveHooks  = NoopResolveHooks{}
	treeHooks     TreeHooks     = NoopTreeHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetResolveHooks registers custom resolve hooks.
func SetResolveHooks(h ResolveHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		resolveHooks = h
	}
}

// SetTreeHooks registers custom tree hooks.
func SetTreeHooks(h TreeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		treeHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Resolve returns the registered resolve hooks.
func Resolve() ResolveHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return resolveHooks
}

// Tree returns the registered tree hooks.
func Tree() TreeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return treeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	resolveHooks = NoopResolveHooks{}
	treeHooks = NoopTreeHooks{}
}
