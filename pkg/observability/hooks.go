// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about allocation requests and HTTP API traffic.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The allocation functions in package ratio are pure and never call hooks;
// the pipeline runner and the HTTP server emit them around each call.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetAllocationHooks(&myAllocationHooks{})
//	    // ... run application
//	}
//
// Callers emit events around the work they do:
//
//	observability.Allocation().OnAllocateStart(ctx, "resolve", len(edges))
//	// ... allocate ...
//	observability.Allocation().OnAllocateComplete(ctx, "resolve", duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Allocation Hooks
// =============================================================================

// AllocationHooks receives events from the allocation pipeline.
type AllocationHooks interface {
	// OnAllocateStart records the start of a resolve, reduce or distribute call.
	OnAllocateStart(ctx context.Context, op string, slots int)

	// OnAllocateComplete records the outcome of the call.
	OnAllocateComplete(ctx context.Context, op string, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response status and handling time.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopAllocationHooks is a no-op implementation of AllocationHooks.
type NoopAllocationHooks struct{}

func (NoopAllocationHooks) OnAllocateStart(context.Context, string, int)                     {}
func (NoopAllocationHooks) OnAllocateComplete(context.Context, string, time.Duration, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	allocationHooks AllocationHooks = NoopAllocationHooks{}
	httpHooks       HTTPHooks       = NoopHTTPHooks{}
	hooksMu         sync.RWMutex
)

// SetAllocationHooks registers custom allocation hooks.
// This should be called once at application startup before any allocation.
func SetAllocationHooks(h AllocationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		allocationHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving requests.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Allocation returns the registered allocation hooks.
func Allocation() AllocationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return allocationHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	allocationHooks = NoopAllocationHooks{}
	httpHooks = NoopHTTPHooks{}
}
