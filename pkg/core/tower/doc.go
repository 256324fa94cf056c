// Package tower implements the stacking simulation: layers that oscillate,
// the cut that splits a moving block against the block below, and the tower
// that grows one layer per successful cut.
//
// # Overview
//
// A [Tower] starts with an immovable base block and one [Layer] whose moving
// block slides back and forth along the layer's axis. Each frame the caller
// advances the simulation with [Tower.Tick]. When the player acts, [Tower.Place]
// cuts the active layer against the last placed block:
//
//   - the overlapping part becomes the layer's placed block
//   - the remainder becomes a falling block that tumbles away
//   - a new layer with the perpendicular axis is stacked on the placed block
//
// If the moving block does not overlap at all, the whole block falls and the
// place result reports [Missed]. The tower never shrinks; only [Tower.Reset]
// clears it.
//
// # Geometry
//
// The cut is a pure function, [Split], over two [block.Block] values. Layers
// own their blocks exclusively; anything handed to a [Scene] or returned from
// [Tower.Layers] is a copy.
//
// # Concurrency
//
// A Tower is not safe for concurrent use. It is driven from a single frame
// loop that serializes ticks and place actions.
package tower
