// Package render turns puzzle state into terminal text for the CLI, the
// console game and the TUI.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorBrass  = lipgloss.Color("#C9A227")
	ColorStone  = lipgloss.Color("#8A8F98")
	ColorMoss   = lipgloss.Color("#5FAF5F")
	ColorRust   = lipgloss.Color("#D75F5F")
	ColorChalk  = lipgloss.Color("#E4E4E4")
	ColorShadow = lipgloss.Color("#4E4E4E")
)

// Styles holds the shared lipgloss styles.
var Styles = struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Rule    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Disk    lipgloss.Style
	Base    lipgloss.Style
	Box     lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorBrass),
	Section: lipgloss.NewStyle().Bold(true).Foreground(ColorChalk),
	Rule:    lipgloss.NewStyle().Foreground(ColorShadow),
	Muted:   lipgloss.NewStyle().Foreground(ColorStone),
	Error:   lipgloss.NewStyle().Foreground(ColorRust),
	Success: lipgloss.NewStyle().Bold(true).Foreground(ColorMoss),
	Disk:    lipgloss.NewStyle().Bold(true).Foreground(ColorBrass),
	Base:    lipgloss.NewStyle().Foreground(ColorStone),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorShadow).
		Padding(0, 1),
}

// RuleWidth is the width of the horizontal separators.
const RuleWidth = 70

func Rule() string {
	return Styles.Rule.Render(strings.Repeat("-", RuleWidth))
}

// Section renders a "[ NAME ]" heading.
func Section(name string) string {
	return Styles.Section.Render("[ " + name + " ]")
}
