package style

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/mtr/pkg/types"
)

// PackageTable renders pkgs as a table of name, version and dependencies.
// Names in installed get a check mark in the status column.
func PackageTable(pkgs []types.Package, installed map[string]bool) (string, error) {
	data := pterm.TableData{{"", "Name", "Version", "Dependencies"}}
	for _, p := range pkgs {
		mark := ""
		if installed[p.Name] {
			mark = SuccessGlyph
		}
		deps := strings.Join(p.Dependencies, ", ")
		if deps == "" {
			deps = "-"
		}
		data = append(data, []string{mark, p.Name, p.Version, deps})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
