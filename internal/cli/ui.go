package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/stacker/internal/render"
)

// Command output uses the game screen's palette.
var (
	// StyleTitle for headings above tables.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(render.ColorAccent)

	// StyleHighlight for profile names and paths.
	StyleHighlight = lipgloss.NewStyle().Foreground(render.ColorAccent)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(render.ColorFaint)

	// StyleValue for plain values.
	StyleValue = lipgloss.NewStyle().Foreground(render.ColorText)

	// StyleNumber for scores.
	StyleNumber = lipgloss.NewStyle().Bold(true).Foreground(render.ColorAccent)

	// StyleRecord marks a new high score, as the HUD does.
	StyleRecord = lipgloss.NewStyle().Bold(true).Foreground(render.ColorRecord)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(render.ColorRecord)

	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(render.ColorMuted)
	styleLabel  = lipgloss.NewStyle().Foreground(render.ColorMuted).Width(12)
)

// status marks one line of command output.
type status struct {
	icon  string
	style lipgloss.Style
}

var (
	statusSuccess = status{"✓", lipgloss.NewStyle().Foreground(render.ColorGood)}
	statusError   = status{"✗", lipgloss.NewStyle().Foreground(render.ColorDanger)}
	statusWarning = status{"!", lipgloss.NewStyle().Foreground(render.ColorRecord)}
	statusInfo    = status{"›", lipgloss.NewStyle().Foreground(render.ColorMuted)}
	statusBusy    = lipgloss.NewStyle().Foreground(render.ColorAccent)
)

func (s status) println(msg string) {
	fmt.Println(s.style.Render(s.icon) + " " + msg)
}

func printSuccess(format string, args ...any) {
	statusSuccess.println(fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	statusError.println(fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	statusWarning.println(StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	statusInfo.println(fmt.Sprintf(format, args...))
}

// printDetail prints an indented line under the previous status.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printKeyValue prints a labeled value, e.g. "Score        12".
func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + StyleValue.Render(value))
}

func printNewline() {
	fmt.Println()
}

// newTable returns a rounded table with the shared header style. cell styles
// the body; row and col are zero-based.
func newTable(cell func(row, col int) lipgloss.Style, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(render.ColorFaint)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return cell(row, col)
		})
}
