package tower

import "github.com/matzehuels/stacker/pkg/core/block"

// Scene receives mesh and camera updates from a tower. Implementations must
// not call back into the tower. Blocks passed in are copies.
type Scene interface {
	// AddBlock registers a new block to draw.
	AddBlock(b block.Block)

	// RemoveBlock drops a previously added block.
	RemoveBlock(id string)

	// SyncCamera asks the renderer to follow the given position.
	// It fires once per successful placement; the tower never waits on it.
	SyncCamera(pos block.Vec3)
}

// NopScene ignores every update.
type NopScene struct{}

func (NopScene) AddBlock(block.Block)  {}
func (NopScene) RemoveBlock(string)    {}
func (NopScene) SyncCamera(block.Vec3) {}

var _ Scene = NopScene{}
