package tower

import "github.com/matzehuels/stacker/pkg/core/block"

// Outcome is the result of a place action.
type Outcome uint8

const (
	// Placed means the cut succeeded and a new layer was stacked.
	Placed Outcome = iota
	// Missed means the moving block did not overlap; the game is lost.
	Missed
	// Ignored means there was nothing to cut.
	Ignored
)

func (o Outcome) String() string {
	switch o {
	case Placed:
		return "placed"
	case Missed:
		return "missed"
	default:
		return "ignored"
	}
}

// PlaceResult is returned by [Tower.Place].
type PlaceResult struct {
	Outcome Outcome
	Cut     CutResult
	Layers  int // layer count after the action
}

// initialDirection is the oscillation sign of a fresh tower.
const initialDirection = 1.0

// Tower is an ordered stack of layers on top of a fixed base block.
type Tower struct {
	physics   Physics
	scene     Scene
	base      block.Block
	layers    []*Layer
	direction float64
}

// New creates a tower with a base block and a single oscillating layer.
// A nil scene is replaced by [NopScene].
func New(p Physics, scene Scene) *Tower {
	if scene == nil {
		scene = NopScene{}
	}
	t := &Tower{
		physics: p,
		scene:   scene,
		base: block.New(block.Spec{
			Width:    p.BaseSize,
			Height:   p.LayerHeight,
			Depth:    p.BaseSize,
			Category: block.Base,
		}),
		direction: initialDirection,
	}
	t.scene.AddBlock(t.base)
	t.pushLayer(block.AxisX, t.base)
	return t
}

// Tick advances falling blocks and the active layer's oscillation by dt
// seconds. Non-positive dt is a no-op.
func (t *Tower) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	for _, l := range t.layers {
		l.fall(dt, t.physics.Fall)
	}

	active := t.active()
	if active == nil || active.moving == nil {
		return
	}
	axis := active.axis
	pos := active.moving.Center(axis) + dt*t.physics.Speed*t.direction
	switch {
	case pos > t.physics.Bound:
		pos = t.physics.Bound
		t.direction = -t.direction
	case pos < -t.physics.Bound:
		pos = -t.physics.Bound
		t.direction = -t.direction
	}
	active.moving.Slide(axis, pos-active.moving.Center(axis))
}

// Place cuts the active layer against the last placed block. On success a new
// layer is stacked on the placed block; on a miss the tower stops growing but
// keeps all of its blocks.
func (t *Tower) Place() PlaceResult {
	active := t.active()
	if active == nil || active.moving == nil {
		return PlaceResult{Outcome: Ignored, Layers: len(t.layers)}
	}

	movingID := active.moving.ID
	res := active.Cut(t.LastPlaced())
	t.scene.RemoveBlock(movingID)
	if res.HasFalling {
		t.scene.AddBlock(res.Falling)
	}
	if !res.Success {
		return PlaceResult{Outcome: Missed, Cut: res, Layers: len(t.layers)}
	}

	t.scene.AddBlock(res.Placed)
	t.pushLayer(active.axis.Other(), res.Placed)
	t.scene.SyncCamera(res.Placed.Position)
	return PlaceResult{Outcome: Placed, Cut: res, Layers: len(t.layers)}
}

// Reset clears every layer and starts over with a single fresh layer on the
// base block. The base block itself is kept.
func (t *Tower) Reset() {
	for _, l := range t.layers {
		for _, b := range l.blocks() {
			t.scene.RemoveBlock(b.ID)
		}
		l.Clear()
	}
	t.layers = nil
	t.direction = initialDirection
	t.pushLayer(block.AxisX, t.base)
}

func (t *Tower) pushLayer(axis block.Axis, below block.Block) {
	moving := below.Above(block.Moving)
	t.layers = append(t.layers, NewLayer(axis, moving))
	t.scene.AddBlock(moving)
}

func (t *Tower) active() *Layer {
	if len(t.layers) == 0 {
		return nil
	}
	return t.layers[len(t.layers)-1]
}

// LastPlaced returns the placed block of the highest cut layer, or the base
// block when nothing has been placed yet.
func (t *Tower) LastPlaced() block.Block {
	for i := len(t.layers) - 1; i >= 0; i-- {
		if p := t.layers[i].placed; p != nil {
			return *p
		}
	}
	return t.base
}

// Len returns the number of layers.
func (t *Tower) Len() int { return len(t.layers) }

// Direction returns the current oscillation sign, +1 or -1.
func (t *Tower) Direction() float64 { return t.direction }

// Base returns the base block.
func (t *Tower) Base() block.Block { return t.base }

// Physics returns the tower's constants.
func (t *Tower) Physics() Physics { return t.physics }

// Active returns a snapshot of the active layer.
func (t *Tower) Active() LayerState {
	if l := t.active(); l != nil {
		return l.State()
	}
	return LayerState{}
}

// Layers returns snapshots of every layer, bottom first.
func (t *Tower) Layers() []LayerState {
	out := make([]LayerState, len(t.layers))
	for i, l := range t.layers {
		out[i] = l.State()
	}
	return out
}

// Blocks returns copies of every block in the tower, base first.
func (t *Tower) Blocks() []block.Block {
	out := []block.Block{t.base}
	for _, l := range t.layers {
		out = append(out, l.blocks()...)
	}
	return out
}
