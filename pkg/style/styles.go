package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Semantic styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	SkippedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	NameStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)
)

// Status indicator glyphs. They are rendered at print time so that Apply
// can still change the color profile.
const (
	SuccessGlyph  = "✓"
	ErrorGlyph    = "✗"
	WarningGlyph  = "!"
	SkippedGlyph  = "○"
	ProgressGlyph = "⟳"
	StepGlyph     = "›"
)

// Name renders a package name
func Name(s string) string {
	return NameStyle.Render(s)
}

// Version renders a package version
func Version(s string) string {
	if s == "" {
		return ""
	}
	return VersionStyle.Render(s)
}
