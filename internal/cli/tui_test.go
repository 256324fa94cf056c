package cli

import (
	"context"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/stacker/internal/render"
	"github.com/matzehuels/stacker/pkg/game"
	"github.com/matzehuels/stacker/pkg/score"
)

func newTestGameModel(t *testing.T) GameModel {
	t.Helper()
	ctx := context.Background()
	scene := render.NewScene()
	hud := &render.HUD{}
	ctrl := game.New(ctx, game.Options{
		Scene:   scene,
		Display: hud,
		Store:   score.NewMemoryStore(0),
		Logger:  log.New(io.Discard),
	})
	m := newGameModel(ctx, ctrl, scene, hud, gameModelOptions{FPS: 60, CameraEase: 4})
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T, want GameModel", next)
	}
	return gm
}

// tickFor sends a first zero-length tick followed by one of length d.
func tickFor(t *testing.T, m GameModel, d time.Duration) GameModel {
	t.Helper()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !m.last.IsZero() {
		start = m.last
	} else {
		m = update(t, m, tickMsg(start))
	}
	return update(t, m, tickMsg(start.Add(d)))
}

func movingX(m GameModel) float64 {
	return m.ctrl.Tower().Active().Moving.Position.X
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyR     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

func TestGameModelTickMovesBlock(t *testing.T) {
	m := newTestGameModel(t)
	m = tickFor(t, m, 100*time.Millisecond)

	if got := movingX(m); math.Abs(got-1) > 1e-9 {
		t.Errorf("moving x = %v, want 1", got)
	}
}

func TestGameModelClampsLongFrames(t *testing.T) {
	m := newTestGameModel(t)
	m = tickFor(t, m, 10*time.Second)

	want := maxFrameDelta * m.ctrl.Tower().Physics().Speed
	if got := movingX(m); math.Abs(got-want) > 1e-9 {
		t.Errorf("moving x = %v, want %v", got, want)
	}
}

func TestGameModelPlaceKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"space", keySpace},
		{"enter", keyEnter},
		{"click", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestGameModel(t)
			m = tickFor(t, m, 100*time.Millisecond)
			m = update(t, m, tt.msg)
			if m.ctrl.Score() != 1 {
				t.Errorf("Score() = %d, want 1", m.ctrl.Score())
			}
			if m.hud.Score != 1 {
				t.Errorf("HUD score = %d, want 1", m.hud.Score)
			}
		})
	}
}

func TestGameModelIgnoresMouseMotion(t *testing.T) {
	m := newTestGameModel(t)
	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionMotion})
	if m.ctrl.Score() != 0 {
		t.Errorf("Score() = %d, want 0", m.ctrl.Score())
	}
}

func TestGameModelGameOverAndRestart(t *testing.T) {
	m := newTestGameModel(t)
	// frames are capped at maxFrameDelta, so five ticks reach the bound
	for range 5 {
		m = tickFor(t, m, time.Second)
	}
	m = update(t, m, keySpace)

	if !m.ctrl.IsGameOver() {
		t.Fatal("placing at the bound should miss")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("View() should show the game-over screen")
	}

	m = update(t, m, keySpace)
	if !m.ctrl.IsGameOver() {
		t.Error("place after game over should be ignored")
	}

	m = update(t, m, keyR)
	if m.ctrl.IsGameOver() || m.ctrl.Score() != 0 {
		t.Errorf("after restart: over=%v score=%d", m.ctrl.IsGameOver(), m.ctrl.Score())
	}
	if strings.Contains(m.View(), "GAME OVER") {
		t.Error("View() should not show game over after restart")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestGameModel(t)
	_, cmd := m.Update(keyQ)
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestGameModelResizeDebounce(t *testing.T) {
	m := newTestGameModel(t)
	if m.width != 80 || m.height != 24 {
		t.Fatalf("first size should apply immediately, got %dx%d", m.width, m.height)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 80 {
		t.Errorf("width = %d, want 80 until the debounce fires", m.width)
	}

	m = update(t, m, resizeMsg{seq: m.resizeSeq - 1, width: 100, height: 30})
	if m.width != 80 {
		t.Errorf("stale resize applied: width = %d", m.width)
	}

	m = update(t, m, resizeMsg{seq: m.resizeSeq, width: 120, height: 40})
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
	if m.view.Width != 120 || m.view.Height != 40-chromeRows {
		t.Errorf("view size = %dx%d", m.view.Width, m.view.Height)
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestGameModel(t)
	out := m.View()
	for _, want := range []string{"SCORE 0", "front", "side", "space place"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	var unsized GameModel
	unsized.hud = &render.HUD{}
	if !strings.Contains(unsized.View(), "starting") {
		t.Error("View() before the first size should show a placeholder")
	}
}
