// Package style provides a functional API for composing and applying lipgloss-based terminal styles.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/tubelist-cli/tubelist/color"
	"golang.org/x/term"
)

// defaultWidth is used when stdout is not a terminal.
const defaultWidth = 80

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a rendering function that applies the foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Text transformation helpers.
var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Box renders s inside a rounded border of the given color.
func Box(border lipgloss.Color, s string) string {
	return New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Margin(1, 0).
		Render(s)
}

// ErrorBox renders s inside the error-colored border.
func ErrorBox(s string) string {
	return Box(color.Maroon, s)
}

// Wrap breaks s at word boundaries so it fits the terminal width.
func Wrap(s string) string {
	return wordwrap.String(s, Width())
}

// Width reports the terminal width of stdout, or a fixed fallback when stdout is redirected.
func Width() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
