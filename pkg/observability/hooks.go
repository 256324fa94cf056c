// Package observability provides hooks for metrics and tracing of a game.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. The game controller and
// the high-score stores emit events through the registered hooks; main
// decides whether anything listens.
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
//	    c := metrics.New(prometheus.NewRegistry())
//	    observability.SetGameHooks(c)
//	    observability.SetStoreHooks(c)
//	    // ... run the game
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Game().OnPlace(ctx, score, overlap, axis)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Game Hooks
// =============================================================================

// GameHooks receives events from the game controller.
type GameHooks interface {
	// OnPlace records a successful cut. axis is "x" or "z".
	OnPlace(ctx context.Context, score int, overlap float64, axis string)

	// OnMiss records the losing cut.
	OnMiss(ctx context.Context, score int, overlap float64)

	// OnRecord records a new high score.
	OnRecord(ctx context.Context, highScore int)

	// OnRestart records a reset back to the first layer.
	OnRestart(ctx context.Context)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from high-score stores.
type StoreHooks interface {
	// OnLoad records a high-score read.
	OnLoad(ctx context.Context, backend string, duration time.Duration, err error)

	// OnSave records a high-score write.
	OnSave(ctx context.Context, backend string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGameHooks is a no-op implementation of GameHooks.
type NoopGameHooks struct{}

func (NoopGameHooks) OnPlace(context.Context, int, float64, string) {}
func (NoopGameHooks) OnMiss(context.Context, int, float64)          {}
func (NoopGameHooks) OnRecord(context.Context, int)                 {}
func (NoopGameHooks) OnRestart(context.Context)                     {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnLoad(context.Context, string, time.Duration, error) {}
func (NoopStoreHooks) OnSave(context.Context, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gameHooks  GameHooks  = NoopGameHooks{}
	storeHooks StoreHooks = NoopStoreHooks{}
	hooksMu    sync.RWMutex
)

// SetGameHooks registers custom game hooks.
// This should be called once at application startup before a game starts.
func SetGameHooks(h GameHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gameHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before a store is opened.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Game returns the registered game hooks.
func Game() GameHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gameHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gameHooks = NoopGameHooks{}
	storeHooks = NoopStoreHooks{}
}
