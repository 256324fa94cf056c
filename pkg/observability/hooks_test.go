package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGameHooks{}
	g.OnPlace(ctx, 3, 7.5, "x")
	g.OnMiss(ctx, 3, -2)
	g.OnRecord(ctx, 3)
	g.OnRestart(ctx)

	s := NoopStoreHooks{}
	s.OnLoad(ctx, "file", time.Millisecond, nil)
	s.OnSave(ctx, "redis", time.Millisecond, context.DeadlineExceeded)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Game().(NoopGameHooks); !ok {
		t.Error("Game() should return NoopGameHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}

	customGame := &testGameHooks{}
	SetGameHooks(customGame)
	if Game() != customGame {
		t.Error("SetGameHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	Reset()
	if _, ok := Game().(NoopGameHooks); !ok {
		t.Error("Reset() should restore NoopGameHooks")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Reset() should restore NoopStoreHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testGameHooks{}
	SetGameHooks(custom)

	SetGameHooks(nil)

	if Game() != custom {
		t.Error("SetGameHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testGameHooks struct{ NoopGameHooks }
type testStoreHooks struct{ NoopStoreHooks }
