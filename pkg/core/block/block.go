// Package block defines the box geometry that every part of the tower is made of.
//
// A [Block] is a plain value: an axis-aligned box with a center position, a
// cosmetic rotation and a [Category] that only affects how it is drawn. Cut
// math never mutates a block in place; it derives new blocks with
// [Block.Resized]. The only in-place mutators are [Block.Slide] (used by the
// oscillating layer that owns a moving block) and [Block.Fall] (used by the
// layer that owns a falling block).
package block

import (
	"github.com/google/uuid"
)

// LayerHeight is the height of every block unless Spec.Height overrides it.
const LayerHeight = 1.0

// Axis is a horizontal axis along which a layer oscillates and is cut.
type Axis uint8

const (
	AxisX Axis = iota
	AxisZ
)

// String returns "x" or "z".
func (a Axis) String() string {
	if a == AxisZ {
		return "z"
	}
	return "x"
}

// Other returns the perpendicular horizontal axis.
func (a Axis) Other() Axis {
	if a == AxisZ {
		return AxisX
	}
	return AxisZ
}

// Category tags a block for visual treatment. It has no effect on geometry.
type Category uint8

const (
	Base Category = iota
	Moving
	Placed
	Falling
)

func (c Category) String() string {
	switch c {
	case Base:
		return "base"
	case Moving:
		return "moving"
	case Placed:
		return "placed"
	case Falling:
		return "falling"
	default:
		return "unknown"
	}
}

// Vec3 is a point or rotation in world space. Y points up.
type Vec3 struct {
	X, Y, Z float64
}

// Along returns the component of v on a horizontal axis.
func (v Vec3) Along(a Axis) float64 {
	if a == AxisZ {
		return v.Z
	}
	return v.X
}

// With returns v with its component on a replaced by value.
func (v Vec3) With(a Axis, value float64) Vec3 {
	if a == AxisZ {
		v.Z = value
	} else {
		v.X = value
	}
	return v
}

// Spec holds the construction parameters of a block.
type Spec struct {
	Width    float64
	Height   float64 // zero means LayerHeight
	Depth    float64
	Position Vec3
	Category Category
}

// Block is an axis-aligned box centered on Position.
// Width spans the x axis, Depth the z axis and Height the y axis.
type Block struct {
	ID       string
	Width    float64
	Height   float64
	Depth    float64
	Position Vec3
	Rotation Vec3
	Category Category
}

// New creates a block with a fresh identifier.
// Dimensions are trusted to be positive; callers derive them from other blocks.
func New(s Spec) Block {
	h := s.Height
	if h == 0 {
		h = LayerHeight
	}
	return Block{
		ID:       uuid.NewString(),
		Width:    s.Width,
		Height:   h,
		Depth:    s.Depth,
		Position: s.Position,
		Category: s.Category,
	}
}

// Extent returns the size of the block along a horizontal axis.
func (b Block) Extent(a Axis) float64 {
	if a == AxisZ {
		return b.Depth
	}
	return b.Width
}

// Center returns the block's center coordinate along a horizontal axis.
func (b Block) Center(a Axis) float64 { return b.Position.Along(a) }

// Min returns the lower edge of the block along a.
func (b Block) Min(a Axis) float64 { return b.Center(a) - b.Extent(a)/2 }

// Max returns the upper edge of the block along a.
func (b Block) Max(a Axis) float64 { return b.Center(a) + b.Extent(a)/2 }

// Bottom returns the lowest y coordinate of the block.
func (b Block) Bottom() float64 { return b.Position.Y - b.Height/2 }

// Top returns the highest y coordinate of the block.
func (b Block) Top() float64 { return b.Position.Y + b.Height/2 }

// Resized derives a new block that keeps b's other dimensions and height but
// has the given extent and center along a. The result gets a new ID and the
// given category; rotation is reset.
func (b Block) Resized(a Axis, extent, center float64, c Category) Block {
	s := Spec{
		Width:    b.Width,
		Height:   b.Height,
		Depth:    b.Depth,
		Position: b.Position.With(a, center),
		Category: c,
	}
	if a == AxisZ {
		s.Depth = extent
	} else {
		s.Width = extent
	}
	return New(s)
}

// Above derives a block with the same footprint stacked directly on top of b.
func (b Block) Above(c Category) Block {
	p := b.Position
	p.Y += b.Height
	return New(Spec{
		Width:    b.Width,
		Height:   b.Height,
		Depth:    b.Depth,
		Position: p,
		Category: c,
	})
}

// Slide moves the block by delta along a horizontal axis.
func (b *Block) Slide(a Axis, delta float64) {
	b.Position = b.Position.With(a, b.Position.Along(a)+delta)
}

// FallRates configures the cosmetic fall of a discarded block.
type FallRates struct {
	Speed float64 // units per second downward
	SpinX float64 // radians per second around x
	SpinZ float64 // radians per second around z
}

// Fall advances a falling block by dt seconds.
func (b *Block) Fall(dt float64, r FallRates) {
	b.Position.Y -= r.Speed * dt
	b.Rotation.X += r.SpinX * dt
	b.Rotation.Z += r.SpinZ * dt
}
