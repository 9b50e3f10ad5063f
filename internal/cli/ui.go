package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/djkalgo/dijkstra"
)

var (
	colorCyan   = lipgloss.Color("36")  // paths
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // unreached
	colorRed    = lipgloss.Color("167") // mismatches
)

var (
	stylePath      = lipgloss.NewStyle().Foreground(colorCyan)
	styleUnreached = lipgloss.NewStyle().Foreground(colorYellow)
	styleSuccess   = lipgloss.NewStyle().Foreground(colorGreen)
	styleError     = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

// renderPath styles a reconstructed path for the terminal.
// The text itself is always Path.String().
func renderPath(p dijkstra.Path) string {
	if !p.Reached {
		return styleUnreached.Render(p.String())
	}
	return stylePath.Render(p.String())
}

// FormatError renders err for stderr.
func FormatError(err error) string {
	return styleError.Render(iconError + " " + err.Error())
}
