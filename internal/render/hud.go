package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/stacker/pkg/game"
)

// HUD holds what the score line and game-over screen show.
type HUD struct {
	Score     int
	HighScore int
	Over      bool
	NewRecord bool
	Profile   string
}

var _ game.Display = (*HUD)(nil)

// UpdateScore implements game.Display. It also clears the game-over screen,
// since the controller only reports scores while playing.
func (h *HUD) UpdateScore(score, highScore int) {
	h.Score = score
	h.HighScore = highScore
	h.Over = false
	h.NewRecord = false
}

// GameOver implements game.Display.
func (h *HUD) GameOver(score int, newRecord bool) {
	h.Score = score
	h.Over = true
	h.NewRecord = newRecord
	if newRecord && score > h.HighScore {
		h.HighScore = score
	}
}

// Header renders the one-line score bar.
func (h *HUD) Header(width int) string {
	left := styleScore.Render(fmt.Sprintf("SCORE %d", h.Score)) + "   " +
		styleBest.Render(fmt.Sprintf("BEST %d", h.HighScore))
	right := ""
	if h.Profile != "" {
		right = styleHint.Render(h.Profile)
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}

// Help renders the key hint line.
func (h *HUD) Help() string {
	if h.Over {
		return styleHint.Render("r restart · q quit")
	}
	return styleHint.Render("space place · r restart · q quit")
}

// Overlay renders the game-over box centered in a width×height area.
func (h *HUD) Overlay(width, height int) string {
	lines := []string{
		styleOver.Render("GAME OVER"),
		"",
		styleScore.Render(fmt.Sprintf("score %d", h.Score)),
	}
	if h.NewRecord {
		lines = append(lines, styleRecord.Render("new record!"))
	} else {
		lines = append(lines, styleBest.Render(fmt.Sprintf("best %d", h.HighScore)))
	}
	lines = append(lines, "", styleHint.Render("press r to play again"))

	box := styleBox.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
