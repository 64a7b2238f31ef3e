package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	kindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	caretStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// prettyPreview colorizes the canonical block for terminal display. This is a
// display-only view; the shared cross-runtime contract is the uncolored text.
func prettyPreview(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		switch {
		case line == "Validation Error":
			lines[i] = titleStyle.Render(line)
		case strings.HasPrefix(line, "❌"):
			lines[i] = kindStyle.Render(line)
		case strings.HasPrefix(line, "┌─"), line == "│":
			lines[i] = gutterStyle.Render(line)
		case strings.HasPrefix(line, "    │ ") && strings.Contains(line, "^"):
			lines[i] = caretStyle.Render(line)
		case strings.HasPrefix(line, "= help:"):
			lines[i] = helpStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
