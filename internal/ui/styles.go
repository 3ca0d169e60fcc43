package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// StyleManager encapsulates the prompt styles
type StyleManager struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Path    lipgloss.Style
	Warn    lipgloss.Style
	Err     lipgloss.Style
	Dim     lipgloss.Style
	Prompt  lipgloss.Style
	KeyHint lipgloss.Style
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Title:   lipgloss.NewStyle().Bold(true),
		Section: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Err:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Prompt:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		KeyHint: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Global style manager instance
var styles = DefaultStyles()

// PrintError writes a styled fatal error message to stderr.
func PrintError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", styles.Err.Render("Error:"), err)
}

// PrintWarning writes a styled warning to stderr.
func PrintWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", styles.Warn.Render("Warning:"), fmt.Sprintf(format, args...))
}
