package block

import "testing"

func TestNewDefaultsHeight(t *testing.T) {
	b := New(Spec{Width: 10, Depth: 10, Category: Base})
	if b.Height != LayerHeight {
		t.Errorf("Height = %v, want %v", b.Height, LayerHeight)
	}
	if b.ID == "" {
		t.Error("New() should assign an ID")
	}

	other := New(Spec{Width: 10, Depth: 10})
	if other.ID == b.ID {
		t.Error("New() should assign distinct IDs")
	}
}

func TestExtentAndCenter(t *testing.T) {
	b := New(Spec{Width: 4, Depth: 6, Position: Vec3{X: 1, Y: 2, Z: -3}})

	tests := []struct {
		name   string
		axis   Axis
		extent float64
		center float64
		min    float64
		max    float64
	}{
		{"x", AxisX, 4, 1, -1, 3},
		{"z", AxisZ, 6, -3, -6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Extent(tt.axis); got != tt.extent {
				t.Errorf("Extent() = %v, want %v", got, tt.extent)
			}
			if got := b.Center(tt.axis); got != tt.center {
				t.Errorf("Center() = %v, want %v", got, tt.center)
			}
			if got := b.Min(tt.axis); got != tt.min {
				t.Errorf("Min() = %v, want %v", got, tt.min)
			}
			if got := b.Max(tt.axis); got != tt.max {
				t.Errorf("Max() = %v, want %v", got, tt.max)
			}
		})
	}
}

func TestAxisOther(t *testing.T) {
	if AxisX.Other() != AxisZ {
		t.Errorf("AxisX.Other() = %v, want z", AxisX.Other())
	}
	if AxisZ.Other() != AxisX {
		t.Errorf("AxisZ.Other() = %v, want x", AxisZ.Other())
	}
}

func TestResizedKeepsOtherDimension(t *testing.T) {
	b := New(Spec{Width: 10, Depth: 8, Position: Vec3{X: 3, Y: 1, Z: 2}, Category: Moving})

	r := b.Resized(AxisX, 7, 1.5, Placed)
	if r.Width != 7 || r.Depth != 8 || r.Height != b.Height {
		t.Errorf("Resized dims = %v x %v x %v, want 7 x %v x 8", r.Width, r.Height, r.Depth, b.Height)
	}
	if r.Position != (Vec3{X: 1.5, Y: 1, Z: 2}) {
		t.Errorf("Resized position = %+v", r.Position)
	}
	if r.Category != Placed {
		t.Errorf("Category = %v, want placed", r.Category)
	}
	if r.ID == b.ID {
		t.Error("Resized should get a new ID")
	}

	z := b.Resized(AxisZ, 2, -1, Falling)
	if z.Width != 10 || z.Depth != 2 || z.Position.Z != -1 {
		t.Errorf("Resized(z) = %+v", z)
	}
}

func TestAbove(t *testing.T) {
	b := New(Spec{Width: 5, Depth: 3, Position: Vec3{X: 1, Y: 2, Z: 4}})
	a := b.Above(Moving)
	if a.Position != (Vec3{X: 1, Y: 3, Z: 4}) {
		t.Errorf("Above position = %+v", a.Position)
	}
	if a.Width != 5 || a.Depth != 3 {
		t.Errorf("Above footprint = %v x %v, want 5 x 3", a.Width, a.Depth)
	}
	if a.Bottom() != b.Top() {
		t.Errorf("Bottom() = %v, want %v", a.Bottom(), b.Top())
	}
}

func TestSlideAndFall(t *testing.T) {
	b := New(Spec{Width: 1, Depth: 1})
	b.Slide(AxisZ, 2.5)
	if b.Position.Z != 2.5 || b.Position.X != 0 {
		t.Errorf("Slide(z) position = %+v", b.Position)
	}

	b.Fall(0.5, FallRates{Speed: 10, SpinX: 2, SpinZ: 4})
	if b.Position.Y != -5 {
		t.Errorf("Fall Y = %v, want -5", b.Position.Y)
	}
	if b.Rotation.X != 1 || b.Rotation.Z != 2 {
		t.Errorf("Fall rotation = %+v", b.Rotation)
	}
}
