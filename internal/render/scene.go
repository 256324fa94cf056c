// Package render draws a tower in the terminal.
//
// [Scene] is the tower's view of the renderer: it records which blocks exist
// and where the camera should go. [View] projects the tower's blocks onto two
// character grids, a front pane (x against y) and a side pane (z against y),
// and [HUD] draws the score line and the game-over screen.
package render

import (
	"math"

	"github.com/matzehuels/stacker/pkg/core/block"
	"github.com/matzehuels/stacker/pkg/core/tower"
)

// Scene tracks the blocks a tower has announced and owns the camera.
// It is not safe for concurrent use; the TUI model drives it from one goroutine.
type Scene struct {
	levels map[string]int
	Camera Camera
}

var _ tower.Scene = (*Scene)(nil)

// NewScene returns an empty scene with the camera at ground level.
func NewScene() *Scene {
	return &Scene{levels: make(map[string]int)}
}

// AddBlock registers b. Its color level is derived from its height.
func (s *Scene) AddBlock(b block.Block) {
	s.levels[b.ID] = levelOf(b)
}

// RemoveBlock forgets a block. Unknown IDs are ignored.
func (s *Scene) RemoveBlock(id string) {
	delete(s.levels, id)
}

// SyncCamera points the camera at pos; the camera eases toward it.
func (s *Scene) SyncCamera(pos block.Vec3) {
	s.Camera.Follow(pos.Y)
}

// Has reports whether id is registered.
func (s *Scene) Has(id string) bool {
	_, ok := s.levels[id]
	return ok
}

// Level returns the color level of a registered block.
func (s *Scene) Level(id string) (int, bool) {
	l, ok := s.levels[id]
	return l, ok
}

// Len returns the number of registered blocks.
func (s *Scene) Len() int { return len(s.levels) }

func levelOf(b block.Block) int {
	if b.Height <= 0 {
		return 0
	}
	return int(math.Round(b.Position.Y / b.Height))
}

// Camera is the vertical center of the view. It eases toward Target.
type Camera struct {
	Y      float64
	Target float64
}

// snapDistance is how close the camera must get before it stops easing.
const snapDistance = 1e-3

// Follow sets a new target.
func (c *Camera) Follow(y float64) { c.Target = y }

// Snap jumps to y without easing.
func (c *Camera) Snap(y float64) {
	c.Y = y
	c.Target = y
}

// Ease moves the camera toward its target by an exponential step. rate is the
// inverse time constant in 1/seconds. It reports whether the camera moved.
func (c *Camera) Ease(dt, rate float64) bool {
	if dt <= 0 || c.Y == c.Target {
		return false
	}
	c.Y += (c.Target - c.Y) * (1 - math.Exp(-rate*dt))
	if math.Abs(c.Target-c.Y) < snapDistance {
		c.Y = c.Target
	}
	return true
}
