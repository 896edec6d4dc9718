package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/mtr/pkg/types"
)

// PackageMarkdown describes pkg as a markdown document. installed is the
// ledger record for the same name, if any.
func PackageMarkdown(pkg types.Package, installed *types.Package) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", pkg.Name)
	fmt.Fprintf(&b, "- **Version:** %s\n", orDash(pkg.Version))
	if installed != nil {
		status := "installed"
		if installed.Version != pkg.Version {
			status = fmt.Sprintf("installed (%s)", orDash(installed.Version))
		}
		fmt.Fprintf(&b, "- **Status:** %s\n", status)
	} else {
		fmt.Fprintf(&b, "- **Status:** not installed\n")
	}
	fmt.Fprintf(&b, "- **Source:** %s\n", orDash(pkg.Source))
	fmt.Fprintf(&b, "- **Archive:** %s\n", orDash(pkg.Archive))
	fmt.Fprintf(&b, "- **Directory:** %s\n", orDash(pkg.Dirname))

	b.WriteString("\n## Dependencies\n\n")
	if len(pkg.Dependencies) == 0 {
		b.WriteString("None.\n")
	}
	for _, d := range pkg.Dependencies {
		fmt.Fprintf(&b, "- %s\n", d)
	}

	b.WriteString("\n## Recipe\n\n")
	if pkg.Recipe == nil {
		b.WriteString("Uses the global recipe.\n")
	} else {
		b.WriteString("```sh\n")
		for _, s := range pkg.Recipe.Steps {
			fmt.Fprintln(&b, strings.TrimSpace(s.Program+" "+strings.Join(s.Args, " ")))
		}
		b.WriteString("```\n")
	}

	return b.String()
}

// RenderMarkdown renders md for the terminal. With plain set, or when
// rendering fails, md is returned unchanged.
func RenderMarkdown(md string, plain bool, width int) string {
	if plain {
		return md
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
