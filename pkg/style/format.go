package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto detects the format from the output stream
	FormatAuto Format = iota
	// FormatTerminal uses colors and unicode decoration
	FormatTerminal
	// FormatText is plain text
	FormatText
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
}

// DetectFormat determines the appropriate output format based on environment and terminal capabilities
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}

// Apply configures the rendering libraries for f. FormatAuto is resolved
// against output first. It returns the effective format.
func Apply(f Format, output *os.File) Format {
	if f == FormatAuto {
		f = DetectFormat(output)
	}

	if f == FormatText {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableStyling()
	} else {
		// Forced terminal output keeps colors even when piped
		profile := termenv.EnvColorProfile()
		if profile == termenv.Ascii {
			profile = termenv.ANSI256
		}
		lipgloss.SetColorProfile(profile)
		pterm.EnableStyling()
	}
	return f
}
