// Package observability provides hooks for instrumenting layout and render
// work without adding hard dependencies on specific backends.
//
// The package uses a simple hooks pattern: hook interfaces with no-op
// defaults, replaced at startup by whoever owns the process (CLI, server,
// tests). Libraries emit events unconditionally; with the defaults in place
// an event costs a read lock and an empty call.
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
package observability

import (
	"sync"
	"time"
)

// LayoutHooks receives events from layout passes.
type LayoutHooks interface {
	// OnPassStart records the beginning of a layout pass over one node.
	OnPassStart(node string, plugCount int)

	// OnPassComplete records a finished layout pass.
	OnPassComplete(node string, zoneCount int, duration time.Duration)
}

// RenderHooks receives events from renderers.
type RenderHooks interface {
	// OnRenderStart records the beginning of a render.
	OnRenderStart(format string, nodeCount int)

	// OnRenderComplete records a finished render and its output size.
	OnRenderComplete(format string, size int, duration time.Duration, err error)
}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnPassStart(string, int)                   {}
func (NoopLayoutHooks) OnPassComplete(string, int, time.Duration) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(string, int)                          {}
func (NoopRenderHooks) OnRenderComplete(string, int, time.Duration, error) {}

var (
	mu          sync.RWMutex
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
)

// SetLayoutHooks replaces the active layout hooks. Passing nil restores the
// no-op implementation.
func SetLayoutHooks(h LayoutHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		layoutHooks = NoopLayoutHooks{}
		return
	}
	layoutHooks = h
}

// SetRenderHooks replaces the active render hooks. Passing nil restores the
// no-op implementation.
func SetRenderHooks(h RenderHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		renderHooks = NoopRenderHooks{}
		return
	}
	renderHooks = h
}

// Layout returns the active layout hooks.
func Layout() LayoutHooks {
	mu.RLock()
	defer mu.RUnlock()
	return layoutHooks
}

// Render returns the active render hooks.
func Render() RenderHooks {
	mu.RLock()
	defer mu.RUnlock()
	return renderHooks
}
