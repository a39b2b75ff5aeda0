// Package theme detects the terminal's preferred color scheme.
package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/degokisss/CS5709/internal/domain"
	"github.com/degokisss/CS5709/internal/ports"
)

var _ ports.ColorSchemeDetector = TerminalDetector{}

// TerminalDetector reads the color scheme preference from the terminal
// background. Detection needs a real terminal on stdout; without one the
// detector reports no signal and callers fall back to their default.
type TerminalDetector struct{}

// NewTerminalDetector returns a detector backed by the current terminal.
func NewTerminalDetector() TerminalDetector {
	return TerminalDetector{}
}

// Preferred implements ports.ColorSchemeDetector.
func (TerminalDetector) Preferred() (domain.Theme, bool) {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return "", false
	}
	if lipgloss.HasDarkBackground() {
		return domain.ThemeDark, true
	}
	return domain.ThemeLight, true
}
