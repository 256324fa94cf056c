package tower

import "github.com/matzehuels/stacker/pkg/core/block"

// Layer is one level of the tower. It owns a moving block until it is cut,
// then at most one placed and one falling block.
type Layer struct {
	axis    block.Axis
	moving  *block.Block
	placed  *block.Block
	falling *block.Block
	overlap float64
	behind  bool
}

// NewLayer creates an uncut layer that oscillates moving along axis.
func NewLayer(axis block.Axis, moving block.Block) *Layer {
	moving.Category = block.Moving
	return &Layer{axis: axis, moving: &moving}
}

// Axis returns the axis the layer oscillates and is cut along.
func (l *Layer) Axis() block.Axis { return l.axis }

// Cut splits the moving block against target. The transition happens once;
// later calls return a skipped result and change nothing.
func (l *Layer) Cut(target block.Block) CutResult {
	if l.moving == nil {
		return CutResult{Skipped: true, Axis: l.axis}
	}

	res := Split(*l.moving, target, l.axis)
	l.moving = nil
	if res.HasFalling {
		f := res.Falling
		l.falling = &f
	}
	if res.Success {
		p := res.Placed
		l.placed = &p
		l.overlap = res.Overlap
		l.behind = res.CuttingBehind
	}
	return res
}

// Clear drops every block the layer owns.
func (l *Layer) Clear() {
	l.moving = nil
	l.placed = nil
	l.falling = nil
	l.overlap = 0
	l.behind = false
}

// IsCut reports whether the layer has been cut.
func (l *Layer) IsCut() bool { return l.moving == nil }

// State returns a copy of the layer's blocks and derived values.
func (l *Layer) State() LayerState {
	return LayerState{
		Axis:          l.axis,
		Moving:        clone(l.moving),
		Placed:        clone(l.placed),
		Falling:       clone(l.falling),
		Overlap:       l.overlap,
		CuttingBehind: l.behind,
	}
}

// blocks returns copies of all blocks owned by the layer.
func (l *Layer) blocks() []block.Block {
	var out []block.Block
	for _, b := range []*block.Block{l.placed, l.moving, l.falling} {
		if b != nil {
			out = append(out, *b)
		}
	}
	return out
}

func (l *Layer) fall(dt float64, r block.FallRates) {
	if l.falling != nil {
		l.falling.Fall(dt, r)
	}
}

// LayerState is a read-only snapshot of a layer. Nil pointers mean the layer
// does not hold that block.
type LayerState struct {
	Axis          block.Axis
	Moving        *block.Block
	Placed        *block.Block
	Falling       *block.Block
	Overlap       float64
	CuttingBehind bool
}

func clone(b *block.Block) *block.Block {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}
