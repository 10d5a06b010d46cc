package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// statusStyles holds pre-built lipgloss styles for the status report.
type statusStyles struct {
	colorEnabled bool

	green lipgloss.Style
	red   lipgloss.Style
	gray  lipgloss.Style
	bold  lipgloss.Style
	dim   lipgloss.Style
	cyan  lipgloss.Style
}

// newStatusStyles creates styles appropriate for the output writer.
func newStatusStyles(w io.Writer) statusStyles {
	s := statusStyles{colorEnabled: shouldUseColor(w)}
	if s.colorEnabled {
		s.green = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
		s.red = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
		s.gray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.bold = lipgloss.NewStyle().Bold(true)
		s.dim = lipgloss.NewStyle().Faint(true)
		s.cyan = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	}
	return s
}

// render applies a style to text only when color is enabled.
func (s statusStyles) render(style lipgloss.Style, text string) string {
	if !s.colorEnabled {
		return text
	}
	return style.Render(text)
}

// shouldUseColor returns true if the writer supports color output.
func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
