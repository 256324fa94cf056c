// Package game drives a stacking tower: it interprets the single "place"
// action, keeps score, tracks the high score and decides when the game is over.
//
// A [Controller] is fed by a frame loop. Every frame calls [Controller.Tick];
// player input calls [Controller.Place] and [Controller.Restart]. All three
// run on the same goroutine, so a place action always completes before the
// next tick is processed.
//
//	ctrl := game.New(ctx, game.Options{Store: store, Display: hud})
//	for frame := range frames {
//	    ctrl.Tick(frame.Delta)
//	    if frame.Pressed {
//	        ctrl.Place(ctx)
//	    }
//	}
package game

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stacker/pkg/core/tower"
	"github.com/matzehuels/stacker/pkg/observability"
	"github.com/matzehuels/stacker/pkg/score"
)

// State is the controller's phase.
type State uint8

const (
	Playing State = iota
	Over
)

func (s State) String() string {
	if s == Over {
		return "game over"
	}
	return "playing"
}

// Display receives score updates for on-screen text.
type Display interface {
	UpdateScore(score, highScore int)
	GameOver(score int, newRecord bool)
}

// NopDisplay ignores every update.
type NopDisplay struct{}

func (NopDisplay) UpdateScore(int, int) {}
func (NopDisplay) GameOver(int, bool)   {}

// Options configures a Controller. Zero values fall back to defaults.
type Options struct {
	Physics tower.Physics // zero value means tower.DefaultPhysics()
	Scene   tower.Scene
	Display Display
	Store   score.Store
	Logger  *log.Logger
}

// Controller owns a tower and the score state around it.
type Controller struct {
	tower   *tower.Tower
	display Display
	store   score.Store
	logger  *log.Logger

	state     State
	score     int
	highScore int
	newRecord bool
}

// New creates a controller and reads the stored high score once. A failing
// store is logged and treated as a high score of 0.
func New(ctx context.Context, opts Options) *Controller {
	if opts.Physics == (tower.Physics{}) {
		opts.Physics = tower.DefaultPhysics()
	}
	if opts.Display == nil {
		opts.Display = NopDisplay{}
	}
	if opts.Store == nil {
		opts.Store = score.NewNullStore()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	c := &Controller{
		tower:   tower.New(opts.Physics, opts.Scene),
		display: opts.Display,
		store:   opts.Store,
		logger:  opts.Logger,
	}

	high, err := c.store.Load(ctx)
	if err != nil {
		c.logger.Warn("could not load high score", "err", err)
		high = 0
	}
	c.highScore = high
	c.display.UpdateScore(c.score, c.highScore)
	return c
}

// Tick advances the simulation by dt seconds. Falling blocks keep moving
// after the game is over.
func (c *Controller) Tick(dt float64) {
	c.tower.Tick(dt)
}

// Place performs the player's action. It is a no-op once the game is over.
func (c *Controller) Place(ctx context.Context) tower.PlaceResult {
	if c.state == Over {
		return tower.PlaceResult{Outcome: tower.Ignored, Layers: c.tower.Len()}
	}

	before := c.tower.Len()
	res := c.tower.Place()

	switch res.Outcome {
	case tower.Placed:
		if res.Layers > before {
			c.score++
			observability.Game().OnPlace(ctx, c.score, res.Cut.Overlap, res.Cut.Axis.String())
			c.logger.Debug("placed", "score", c.score, "overlap", res.Cut.Overlap, "axis", res.Cut.Axis)
			if c.score > c.highScore {
				c.recordHighScore(ctx)
			}
			c.display.UpdateScore(c.score, c.highScore)
		}
	case tower.Missed:
		c.state = Over
		observability.Game().OnMiss(ctx, c.score, res.Cut.Overlap)
		c.logger.Info("game over", "score", c.score, "record", c.newRecord)
		c.display.GameOver(c.score, c.newRecord)
	}
	return res
}

func (c *Controller) recordHighScore(ctx context.Context) {
	c.highScore = c.score
	c.newRecord = true
	observability.Game().OnRecord(ctx, c.highScore)
	if err := c.store.Save(ctx, c.highScore); err != nil {
		c.logger.Warn("could not save high score", "score", c.highScore, "err", err)
	}
}

// Restart clears the tower and starts a new game.
func (c *Controller) Restart(ctx context.Context) {
	c.tower.Reset()
	c.score = 0
	c.newRecord = false
	c.state = Playing
	observability.Game().OnRestart(ctx)
	c.logger.Debug("restart", "high_score", c.highScore)
	c.display.UpdateScore(c.score, c.highScore)
}

// Tower returns the controlled tower. Callers must only read from it.
func (c *Controller) Tower() *tower.Tower { return c.tower }

// State returns the current phase.
func (c *Controller) State() State { return c.state }

// Score returns the number of layers stacked in the current game.
func (c *Controller) Score() int { return c.score }

// HighScore returns the best score, including the current game.
func (c *Controller) HighScore() int { return c.highScore }

// NewRecord reports whether the current game set a new high score.
func (c *Controller) NewRecord() bool { return c.newRecord }

// IsGameOver reports whether the last place action missed.
func (c *Controller) IsGameOver() bool { return c.state == Over }
