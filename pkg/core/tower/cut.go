package tower

import (
	"math"

	"github.com/matzehuels/stacker/pkg/core/block"
)

// CutResult describes what happened when a moving block was cut.
type CutResult struct {
	// Success is false when the moving block missed the target entirely.
	Success bool

	// Skipped is true when the layer had already been cut; nothing changed.
	Skipped bool

	// Axis is the axis the cut was computed along.
	Axis block.Axis

	// Overlap is the moving extent minus the center distance. It is positive
	// exactly when Success is true.
	Overlap float64

	// CuttingBehind reports that the moving block's center trailed the target's.
	CuttingBehind bool

	// Placed is the surviving block. Valid only when Success is true.
	Placed block.Block

	// Falling is the discarded part. Valid only when HasFalling is true; a
	// perfectly aligned cut discards nothing.
	Falling    block.Block
	HasFalling bool
}

// Split cuts moving against target along axis. It does not modify its inputs.
func Split(moving, target block.Block, axis block.Axis) CutResult {
	d := moving.Extent(axis)
	center := moving.Center(axis)
	delta := center - target.Center(axis)
	overlap := d - math.Abs(delta)

	res := CutResult{Axis: axis, Overlap: overlap}
	if overlap <= 0 {
		res.Falling = moving.Resized(axis, d, center, block.Falling)
		res.HasFalling = true
		return res
	}

	res.Success = true
	res.CuttingBehind = delta < 0

	sign := -1.0
	if res.CuttingBehind {
		sign = 1.0
	}
	res.Placed = moving.Resized(axis, overlap, center+sign*(d-overlap)/2, block.Placed)

	if rest := d - overlap; rest > 0 {
		fc := center + overlap/2
		if res.CuttingBehind {
			fc -= overlap
		}
		res.Falling = moving.Resized(axis, rest, fc, block.Falling)
		res.HasFalling = true
	}
	return res
}
