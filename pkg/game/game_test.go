package game

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stacker/pkg/core/tower"
	"github.com/matzehuels/stacker/pkg/score"
)

type recordingDisplay struct {
	score, high int
	overs       int
	overScore   int
	overRecord  bool
}

func (d *recordingDisplay) UpdateScore(s, h int) { d.score, d.high = s, h }
func (d *recordingDisplay) GameOver(s int, record bool) {
	d.overs++
	d.overScore, d.overRecord = s, record
}

type failingStore struct{ loadErr, saveErr error }

func (s failingStore) Load(context.Context) (int, error) { return 0, s.loadErr }
func (s failingStore) Save(context.Context, int) error   { return s.saveErr }
func (s failingStore) Close() error                      { return nil }

func newTestController(t *testing.T, high int) (*Controller, *score.MemoryStore, *recordingDisplay) {
	t.Helper()
	store := score.NewMemoryStore(high)
	display := &recordingDisplay{}
	c := New(context.Background(), Options{
		Store:   store,
		Display: display,
		Logger:  log.New(&bytes.Buffer{}),
	})
	return c, store, display
}

func TestNewLoadsHighScore(t *testing.T) {
	c, _, display := newTestController(t, 7)
	if c.HighScore() != 7 {
		t.Errorf("HighScore() = %d, want 7", c.HighScore())
	}
	if c.State() != Playing || c.Score() != 0 {
		t.Errorf("state = %v score = %d, want playing/0", c.State(), c.Score())
	}
	if display.high != 7 {
		t.Errorf("display high = %d, want 7", display.high)
	}
}

func TestScoreCountsPlacements(t *testing.T) {
	ctx := context.Background()
	c, store, display := newTestController(t, 0)

	for i := 1; i <= 5; i++ {
		if res := c.Place(ctx); res.Outcome != tower.Placed {
			t.Fatalf("place %d = %v", i, res.Outcome)
		}
		if c.Score() != i {
			t.Fatalf("Score() = %d, want %d", c.Score(), i)
		}
	}
	if c.Score() != c.Tower().Len()-1 {
		t.Errorf("Score() = %d, want layers beyond the first (%d)", c.Score(), c.Tower().Len()-1)
	}
	if c.HighScore() != 5 || !c.NewRecord() {
		t.Errorf("HighScore() = %d NewRecord() = %v, want 5/true", c.HighScore(), c.NewRecord())
	}
	if v, _ := store.Load(ctx); v != 5 {
		t.Errorf("stored high score = %d, want 5", v)
	}
	if store.Saves() != 5 {
		t.Errorf("Saves() = %d, want one per new record", store.Saves())
	}
	if display.score != 5 || display.high != 5 {
		t.Errorf("display = %d/%d, want 5/5", display.score, display.high)
	}
}

func TestHighScoreOnlyWhenStrictlyGreater(t *testing.T) {
	ctx := context.Background()
	c, store, _ := newTestController(t, 3)

	for i := 0; i < 3; i++ {
		c.Place(ctx)
	}
	if c.NewRecord() {
		t.Error("matching the high score is not a record")
	}
	if store.Saves() != 0 {
		t.Errorf("Saves() = %d, want 0", store.Saves())
	}

	c.Place(ctx)
	if !c.NewRecord() || c.HighScore() != 4 {
		t.Errorf("NewRecord() = %v HighScore() = %d, want true/4", c.NewRecord(), c.HighScore())
	}
	if store.Saves() != 1 {
		t.Errorf("Saves() = %d, want 1", store.Saves())
	}
}

func TestMissEndsGame(t *testing.T) {
	ctx := context.Background()
	c, _, display := newTestController(t, 10)

	c.Place(ctx)
	c.Tick(1.2) // 12 units at the default speed
	res := c.Place(ctx)
	if res.Outcome != tower.Missed {
		t.Fatalf("Outcome = %v, want missed", res.Outcome)
	}
	if !c.IsGameOver() || c.State() != Over {
		t.Fatal("controller should be over after a miss")
	}
	if display.overs != 1 || display.overScore != 1 || display.overRecord {
		t.Errorf("display game over = %d calls, score %d, record %v", display.overs, display.overScore, display.overRecord)
	}

	layers := c.Tower().Len()
	if again := c.Place(ctx); again.Outcome != tower.Ignored {
		t.Errorf("Place() after game over = %v, want ignored", again.Outcome)
	}
	if c.Score() != 1 || c.Tower().Len() != layers {
		t.Error("Place() after game over should change nothing")
	}
	if display.overs != 1 {
		t.Error("game over should be reported once")
	}
}

func TestRestart(t *testing.T) {
	ctx := context.Background()
	c, _, display := newTestController(t, 0)

	c.Place(ctx)
	c.Place(ctx)
	c.Tick(1.3)
	c.Place(ctx)
	if !c.IsGameOver() {
		t.Fatal("expected game over before restart")
	}

	c.Restart(ctx)
	if c.IsGameOver() || c.Score() != 0 || c.NewRecord() {
		t.Errorf("after restart: over=%v score=%d record=%v", c.IsGameOver(), c.Score(), c.NewRecord())
	}
	if c.HighScore() != 2 {
		t.Errorf("HighScore() = %d, want 2 to survive restart", c.HighScore())
	}
	tw := c.Tower()
	if tw.Len() != 1 || tw.Active().Moving == nil || tw.Direction() != 1 {
		t.Errorf("tower after restart: len=%d moving=%v direction=%v", tw.Len(), tw.Active().Moving != nil, tw.Direction())
	}
	if display.score != 0 || display.high != 2 {
		t.Errorf("display = %d/%d, want 0/2", display.score, display.high)
	}

	if res := c.Place(ctx); res.Outcome != tower.Placed {
		t.Errorf("Place() after restart = %v, want placed", res.Outcome)
	}
}

func TestStoreFailuresDoNotStopPlay(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	c := New(ctx, Options{
		Store:  failingStore{loadErr: stderrors.New("down"), saveErr: stderrors.New("still down")},
		Logger: log.New(&buf),
	})

	if c.HighScore() != 0 {
		t.Errorf("HighScore() = %d, want 0 when load fails", c.HighScore())
	}
	if res := c.Place(ctx); res.Outcome != tower.Placed {
		t.Fatalf("Place() = %v, want placed", res.Outcome)
	}
	if c.HighScore() != 1 {
		t.Errorf("HighScore() = %d, want 1 even when save fails", c.HighScore())
	}
	out := buf.String()
	if !strings.Contains(out, "could not load high score") || !strings.Contains(out, "could not save high score") {
		t.Errorf("expected warnings in log, got %q", out)
	}
}

func TestDefaults(t *testing.T) {
	c := New(context.Background(), Options{})
	if c.Tower().Physics() != tower.DefaultPhysics() {
		t.Error("zero Physics should use defaults")
	}
	if res := c.Place(context.Background()); res.Outcome != tower.Placed {
		t.Errorf("Place() = %v, want placed", res.Outcome)
	}
}
