// Package observability provides hooks for logging and metrics.
//
// This package enables optional instrumentation without tying the frame loop
// or the exporters to a particular backend. The CLI registers hooks at
// startup; libraries call them to emit events.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetFrameHooks(&myFrameHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnRenderStart(ctx, "svg")
//	// ... render ...
//	observability.Render().OnRenderComplete(ctx, "svg", len(data), elapsed, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Frame Hooks
// =============================================================================

// FrameHooks receives reveal state transitions from the frame controller.
// They fire on transitions only, never once per frame.
type FrameHooks interface {
	// OnHoverChange records the pointer moving between nodes (-1 = none).
	OnHoverChange(from, to int)

	// OnRevealStart records the first frame with non-zero progress.
	OnRevealStart(node int)

	// OnRevealComplete records progress reaching 1.
	OnRevealComplete(frames int)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from still-frame exporters.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopFrameHooks is a no-op implementation of FrameHooks.
type NoopFrameHooks struct{}

func (NoopFrameHooks) OnHoverChange(int, int) {}
func (NoopFrameHooks) OnRevealStart(int)      {}
func (NoopFrameHooks) OnRevealComplete(int)   {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string)                               {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	frameHooks  FrameHooks  = NoopFrameHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetFrameHooks registers custom frame hooks.
// This should be called once at application startup before any frame is drawn.
func SetFrameHooks(h FrameHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		frameHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any export.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Frame returns the registered frame hooks.
func Frame() FrameHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return frameHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	frameHooks = NoopFrameHooks{}
	renderHooks = NoopRenderHooks{}
}
