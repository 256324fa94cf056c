package tower

import "github.com/matzehuels/stacker/pkg/core/block"

// Physics holds the fixed constants shared by every layer of a tower.
type Physics struct {
	// LayerHeight is the height of each block and the vertical step between layers.
	LayerHeight float64

	// BaseSize is the width and depth of the base block and of the first layer.
	BaseSize float64

	// Bound is the oscillation amplitude: moving blocks stay within [-Bound, Bound].
	Bound float64

	// Speed is the oscillation speed in units per second.
	Speed float64

	// Fall configures the cosmetic tumble of discarded blocks.
	Fall block.FallRates
}

// Default physics values.
const (
	DefaultBaseSize  = 10.0
	DefaultBound     = 12.0
	DefaultSpeed     = 10.0
	DefaultFallSpeed = 12.0
	DefaultSpinX     = 2.0
	DefaultSpinZ     = 1.3
)

// DefaultPhysics returns the physics used when nothing is configured.
func DefaultPhysics() Physics {
	return Physics{
		LayerHeight: block.LayerHeight,
		BaseSize:    DefaultBaseSize,
		Bound:       DefaultBound,
		Speed:       DefaultSpeed,
		Fall: block.FallRates{
			Speed: DefaultFallSpeed,
			SpinX: DefaultSpinX,
			SpinZ: DefaultSpinZ,
		},
	}
}
