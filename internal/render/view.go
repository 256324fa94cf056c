package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/stacker/pkg/core/block"
	"github.com/matzehuels/stacker/pkg/core/tower"
)

// Minimum pane size; smaller terminals get a clipped picture.
const (
	minPaneWidth  = 8
	minPaneHeight = 4
	paneGap       = 1
)

// View projects blocks onto a front and a side pane.
type View struct {
	// Width and Height are the total size available, borders included.
	Width  int
	Height int

	// Span is the half-width of world space shown horizontally.
	Span float64
	// RowHeight is the world height of one terminal row.
	RowHeight float64
	// Anchor is the fraction of the pane, from the bottom, where the camera sits.
	Anchor float64
}

// NewView sizes a view for the given physics so the moving block is always
// visible at the edge of its oscillation.
func NewView(p tower.Physics, width, height int) View {
	return View{
		Width:     width,
		Height:    height,
		Span:      p.Bound + p.BaseSize/2,
		RowHeight: p.LayerHeight,
		Anchor:    0.4,
	}
}

// Resize returns v with a new terminal size.
func (v View) Resize(width, height int) View {
	v.Width = width
	v.Height = height
	return v
}

// paneSize returns the inner size of a single pane.
func (v View) paneSize() (w, h int) {
	// two panes with two border columns each, one label row and two border rows
	w = max((v.Width-paneGap-4)/2, minPaneWidth)
	h = max(v.Height-3, minPaneHeight)
	return w, h
}

// Render draws both panes. Only blocks registered in scene are drawn.
func (v View) Render(blocks []block.Block, scene *Scene) string {
	w, h := v.paneSize()
	front := v.pane(block.AxisX, blocks, scene, w, h)
	side := v.pane(block.AxisZ, blocks, scene, w, h)

	left := lipgloss.JoinVertical(lipgloss.Left, styleLabel.Render(" front (x)"), styleBorder.Render(front))
	right := lipgloss.JoinVertical(lipgloss.Left, styleLabel.Render(" side (z)"), styleBorder.Render(side))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", paneGap), right)
}

type cell struct {
	set   bool
	cat   block.Category
	level int
}

// pane rasterizes blocks along a horizontal axis into h rows of w columns.
func (v View) pane(axis block.Axis, blocks []block.Block, scene *Scene, w, h int) string {
	grid := make([][]cell, h)
	for r := range grid {
		grid[r] = make([]cell, w)
	}

	rowH := v.RowHeight
	if rowH <= 0 {
		rowH = block.LayerHeight
	}
	colW := 2 * v.Span / float64(w)
	// rows and columns are sampled at their centers; the camera sits on the
	// center of the row Anchor of the way up
	above := int(float64(h) * (1 - v.Anchor))
	top := scene.Camera.Y + (float64(above)+0.5)*rowH

	for _, b := range blocks {
		level, ok := scene.Level(b.ID)
		if !ok {
			continue
		}
		r0 := int(math.Floor((top-b.Top())/rowH-0.5)) + 1
		r1 := int(math.Floor((top-b.Bottom())/rowH - 0.5))
		c0 := int(math.Floor((b.Min(axis)+v.Span)/colW-0.5)) + 1
		c1 := int(math.Ceil((b.Max(axis)+v.Span)/colW-0.5)) - 1
		for r := max(r0, 0); r <= min(r1, h-1); r++ {
			for c := max(c0, 0); c <= min(c1, w-1); c++ {
				grid[r][c] = cell{set: true, cat: b.Category, level: level}
			}
		}
	}

	lines := make([]string, h)
	for r, row := range grid {
		lines[r] = renderRow(row)
	}
	return strings.Join(lines, "\n")
}

// renderRow styles runs of identical cells together to keep escape codes short.
func renderRow(row []cell) string {
	var b strings.Builder
	for i := 0; i < len(row); {
		j := i + 1
		for j < len(row) && row[j] == row[i] {
			j++
		}
		n := j - i
		if !row[i].set {
			b.WriteString(strings.Repeat(" ", n))
		} else {
			c := row[i]
			b.WriteString(blockStyle(c.cat, c.level).Render(strings.Repeat(glyph(c.cat), n)))
		}
		i = j
	}
	return b.String()
}
