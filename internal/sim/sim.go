// Package sim plays the game headlessly with a simple bot.
//
// The bot watches the active block and presses "place" when it crosses an
// aim point: the center of the block below plus a per-layer error drawn from
// a normal distribution. It drives the same game.Controller as the terminal
// front end, so runs exercise scoring, high-score storage and hooks.
package sim

import (
	"context"
	"io"
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stacker/pkg/core/block"
	"github.com/matzehuels/stacker/pkg/core/tower"
	"github.com/matzehuels/stacker/pkg/game"
	"github.com/matzehuels/stacker/pkg/score"
)

// Defaults for Options.
const (
	DefaultRounds   = 10
	DefaultFPS      = 60
	DefaultJitter   = 0.6
	DefaultMaxScore = 500
)

// Options configures a simulation run.
type Options struct {
	Rounds   int
	Seed     uint64
	Jitter   float64 // standard deviation of the aim error in world units
	FPS      int
	MaxScore int // a round stops once it reaches this score
	Physics  tower.Physics
	Store    score.Store
	Logger   *log.Logger
}

func (o *Options) applyDefaults() {
	if o.Rounds <= 0 {
		o.Rounds = DefaultRounds
	}
	if o.FPS <= 0 {
		o.FPS = DefaultFPS
	}
	if o.Jitter < 0 {
		o.Jitter = 0
	}
	if o.MaxScore <= 0 {
		o.MaxScore = DefaultMaxScore
	}
	if o.Physics == (tower.Physics{}) {
		o.Physics = tower.DefaultPhysics()
	}
	if o.Store == nil {
		o.Store = score.NewMemoryStore(0)
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// Round is the outcome of one game.
type Round struct {
	Score       int
	Frames      int
	Seconds     float64
	MeanOverlap float64
	Capped      bool // stopped at MaxScore rather than by a miss
	NewRecord   bool
}

// Report summarizes a run.
type Report struct {
	Rounds    []Round
	HighScore int
}

// Best returns the highest round score.
func (r Report) Best() int {
	best := 0
	for _, rd := range r.Rounds {
		best = max(best, rd.Score)
	}
	return best
}

// Mean returns the average round score.
func (r Report) Mean() float64 {
	if len(r.Rounds) == 0 {
		return 0
	}
	total := 0
	for _, rd := range r.Rounds {
		total += rd.Score
	}
	return float64(total) / float64(len(r.Rounds))
}

// Run plays opts.Rounds games and returns their results. It stops early with
// ctx.Err() when ctx is canceled between rounds.
func Run(ctx context.Context, opts Options) (Report, error) {
	opts.applyDefaults()

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	ctrl := game.New(ctx, game.Options{
		Physics: opts.Physics,
		Store:   opts.Store,
		Logger:  opts.Logger,
	})
	b := &bot{
		rng:       rng,
		jitter:    opts.Jitter,
		dt:        1 / float64(opts.FPS),
		maxFrames: layerFrameLimit(opts.Physics, opts.FPS),
	}

	var rep Report
	for i := range opts.Rounds {
		if err := ctx.Err(); err != nil {
			rep.HighScore = ctrl.HighScore()
			return rep, err
		}
		if i > 0 {
			ctrl.Restart(ctx)
		}
		rd := b.play(ctx, ctrl, opts.MaxScore)
		opts.Logger.Debug("round finished", "round", i+1, "score", rd.Score, "frames", rd.Frames)
		rep.Rounds = append(rep.Rounds, rd)
	}
	rep.HighScore = ctrl.HighScore()
	return rep, nil
}

// layerFrameLimit allows two full oscillation periods before the bot gives up
// waiting for its aim point and places anyway.
func layerFrameLimit(p tower.Physics, fps int) int {
	period := 4 * p.Bound / p.Speed
	return int(math.Ceil(2*period*float64(fps))) + 1
}

type bot struct {
	rng       *rand.Rand
	jitter    float64
	dt        float64
	maxFrames int
}

func (b *bot) play(ctx context.Context, ctrl *game.Controller, maxScore int) Round {
	var (
		rd      Round
		overlap float64
	)
	for !ctrl.IsGameOver() && ctrl.Score() < maxScore {
		frames, res := b.layer(ctx, ctrl)
		rd.Frames += frames
		if res.Outcome == tower.Placed {
			overlap += res.Cut.Overlap
		}
	}

	rd.Score = ctrl.Score()
	rd.Seconds = float64(rd.Frames) * b.dt
	rd.Capped = !ctrl.IsGameOver()
	rd.NewRecord = ctrl.NewRecord()
	if rd.Score > 0 {
		rd.MeanOverlap = overlap / float64(rd.Score)
	}
	return rd
}

// layer ticks until the active block crosses the aim point, then places.
func (b *bot) layer(ctx context.Context, ctrl *game.Controller) (int, tower.PlaceResult) {
	t := ctrl.Tower()
	axis := t.Active().Axis
	aim := t.LastPlaced().Center(axis) + b.rng.NormFloat64()*b.jitter

	prev := movingCenter(t, axis)
	for frame := 1; ; frame++ {
		ctrl.Tick(b.dt)
		cur := movingCenter(t, axis)
		crossed := frame > 1 && (prev-aim)*(cur-aim) <= 0
		if crossed || frame >= b.maxFrames {
			return frame, ctrl.Place(ctx)
		}
		prev = cur
	}
}

func movingCenter(t *tower.Tower, axis block.Axis) float64 {
	if m := t.Active().Moving; m != nil {
		return m.Center(axis)
	}
	return 0
}
