package cli

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/stacker/internal/render"
	"github.com/matzehuels/stacker/pkg/game"
)

const (
	// resizeDebounce delays re-layout until the terminal stops changing size.
	resizeDebounce = 150 * time.Millisecond
	// maxFrameDelta caps a single step after the process was suspended.
	maxFrameDelta = 0.25
	// chromeRows are the header and help lines around the panes.
	chromeRows = 2
)

type tickMsg time.Time

type resizeMsg struct {
	seq           int
	width, height int
}

// =============================================================================
// GameModel - Interactive game
// =============================================================================

// GameModel is the bubbletea model that drives a game.Controller.
type GameModel struct {
	ctx   context.Context
	ctrl  *game.Controller
	scene *render.Scene
	hud   *render.HUD
	view  render.View

	interval time.Duration
	ease     float64
	last     time.Time

	width, height int
	resizeSeq     int
}

// gameModelOptions configures newGameModel.
type gameModelOptions struct {
	FPS        int
	CameraEase float64
}

// newGameModel wraps a controller whose scene and display are the given
// scene and hud.
func newGameModel(ctx context.Context, ctrl *game.Controller, scene *render.Scene, hud *render.HUD, opts gameModelOptions) GameModel {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	return GameModel{
		ctx:      ctx,
		ctrl:     ctrl,
		scene:    scene,
		hud:      hud,
		view:     render.NewView(ctrl.Tower().Physics(), 0, 0),
		interval: time.Second / time.Duration(opts.FPS),
		ease:     opts.CameraEase,
	}
}

func (m GameModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m GameModel) Init() tea.Cmd {
	return m.tick()
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		dt := 0.0
		if !m.last.IsZero() {
			dt = min(now.Sub(m.last).Seconds(), maxFrameDelta)
		}
		m.last = now
		m.ctrl.Tick(dt)
		m.scene.Camera.Ease(dt, m.ease)
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "enter":
			m.place()
		case "r":
			m.restart()
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.place()
		}

	case tea.WindowSizeMsg:
		if m.width == 0 {
			m.applySize(msg.Width, msg.Height)
			return m, nil
		}
		m.resizeSeq++
		seq := m.resizeSeq
		return m, tea.Tick(resizeDebounce, func(time.Time) tea.Msg {
			return resizeMsg{seq: seq, width: msg.Width, height: msg.Height}
		})

	case resizeMsg:
		// only the last resize in a burst is applied
		if msg.seq == m.resizeSeq {
			m.applySize(msg.width, msg.height)
		}
	}
	return m, nil
}

func (m *GameModel) applySize(width, height int) {
	m.width = width
	m.height = height
	m.view = m.view.Resize(width, height-chromeRows)
}

func (m *GameModel) place() {
	m.ctrl.Place(m.ctx)
}

func (m *GameModel) restart() {
	m.ctrl.Restart(m.ctx)
	m.scene.Camera.Follow(m.ctrl.Tower().LastPlaced().Position.Y)
}

func (m GameModel) View() string {
	if m.width == 0 {
		return StyleDim.Render("starting…")
	}

	var b strings.Builder
	b.WriteString(m.hud.Header(m.width))
	b.WriteString("\n")

	if m.ctrl.IsGameOver() {
		b.WriteString(m.hud.Overlay(m.width, m.height-chromeRows))
	} else {
		frame := m.view.Render(m.ctrl.Tower().Blocks(), m.scene)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, frame))
	}

	b.WriteString("\n")
	b.WriteString(m.hud.Help())
	return b.String()
}

// runGame runs the interactive program until the player quits.
func runGame(ctx context.Context, m GameModel) error {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
