package score

import (
	"context"
	"path/filepath"
	"testing"
)

func testRoundTrip(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if v, err := s.Load(ctx); err != nil || v != 0 {
		t.Fatalf("Load() on empty store = %d, %v, want 0", v, err)
	}
	if err := s.Save(ctx, 3); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := s.Save(ctx, 8); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if v, err := s.Load(ctx); err != nil || v != 8 {
		t.Errorf("Load() = %d, %v, want 8", v, err)
	}
}

func TestBadgerStoreInMemory(t *testing.T) {
	s, err := NewBadgerStore("", "default")
	if err != nil {
		t.Fatalf("NewBadgerStore error: %v", err)
	}
	defer s.Close()
	testRoundTrip(t, s)
}

func TestBadgerStoreOnDisk(t *testing.T) {
	dir := t.TempDir()
	s, err := NewBadgerStore(dir, "default")
	if err != nil {
		t.Fatalf("NewBadgerStore error: %v", err)
	}
	testRoundTrip(t, s)
	if err := s.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	reopened, err := NewBadgerStore(dir, "default")
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer reopened.Close()
	if v, _ := reopened.Load(context.Background()); v != 8 {
		t.Errorf("Load() after reopen = %d, want 8", v)
	}
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scores.db")

	s, err := NewSQLiteStore(ctx, path, "default")
	if err != nil {
		t.Fatalf("NewSQLiteStore error: %v", err)
	}
	defer s.Close()
	testRoundTrip(t, s)

	other, err := NewSQLiteStore(ctx, path, "second")
	if err != nil {
		t.Fatalf("NewSQLiteStore error: %v", err)
	}
	defer other.Close()
	if v, _ := other.Load(ctx); v != 0 {
		t.Errorf("profiles should be isolated, got %d", v)
	}
}
