package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/stacker/pkg/core/block"
)

// Palette of the game screen. The CLI prints with the same colors.
var (
	ColorAccent = lipgloss.Color("36")  // score, titles
	ColorGood   = lipgloss.Color("35")  // completed actions
	ColorRecord = lipgloss.Color("220") // new high score, warnings
	ColorDanger = lipgloss.Color("167") // game over, errors
	ColorText   = lipgloss.Color("255")
	ColorMuted  = lipgloss.Color("245") // base block, labels
	ColorFaint  = lipgloss.Color("240") // borders, hints
)

// levelColors cycles through a gradient so neighboring layers differ.
var levelColors = []lipgloss.Color{
	"30", "36", "37", "38", "44", "43", "42", "41",
	"77", "113", "149", "185", "179", "173", "167", "168",
	"169", "133", "97", "61", "67", "31",
}

const (
	glyphSolid   = "█"
	glyphFalling = "▒"
)

// blockStyle returns the style for a block of category c at the given level.
func blockStyle(c block.Category, level int) lipgloss.Style {
	if c == block.Base {
		return lipgloss.NewStyle().Foreground(ColorMuted)
	}
	if level < 0 {
		level = -level
	}
	s := lipgloss.NewStyle().Foreground(levelColors[level%len(levelColors)])
	switch c {
	case block.Moving:
		return s.Bold(true)
	case block.Falling:
		return s.Faint(true)
	default:
		return s
	}
}

func glyph(c block.Category) string {
	if c == block.Falling {
		return glyphFalling
	}
	return glyphSolid
}

var (
	styleLabel  = lipgloss.NewStyle().Foreground(ColorFaint)
	styleBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorFaint)
	styleScore  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	styleBest   = lipgloss.NewStyle().Foreground(ColorText)
	styleRecord = lipgloss.NewStyle().Bold(true).Foreground(ColorRecord)
	styleOver   = lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)
	styleHint   = lipgloss.NewStyle().Foreground(ColorFaint)
	styleBox    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 4).
			Align(lipgloss.Center)
)
