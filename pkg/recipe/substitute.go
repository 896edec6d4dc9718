package recipe

import (
	"strings"

	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/types"
)

// Placeholders understood in step arguments
const (
	PlaceholderArchive = "{archive}"
	PlaceholderSource  = "{source}"
	PlaceholderDirname = "{dirname}"
	PlaceholderVersion = "{version}"
	PlaceholderName    = "{name}"
)

func replacerFor(pkg types.Package) *strings.Replacer {
	return strings.NewReplacer(
		PlaceholderArchive, pkg.Archive,
		PlaceholderSource, pkg.Source,
		PlaceholderDirname, pkg.Dirname,
		PlaceholderVersion, pkg.Version,
		PlaceholderName, pkg.Name,
	)
}

// Substitute replaces every placeholder in arg with the matching package
// field. Anything else in braces is left alone.
func Substitute(arg string, pkg types.Package) string {
	return replacerFor(pkg).Replace(arg)
}

// SubstituteAll applies Substitute to each argument
func SubstituteAll(args []string, pkg types.Package) []string {
	r := replacerFor(pkg)
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = r.Replace(a)
	}
	return out
}

// Select picks the package's own recipe, falling back to global
func Select(pkg types.Package, global *types.Recipe) (*types.Recipe, error) {
	if pkg.Recipe != nil {
		return pkg.Recipe, nil
	}
	if global != nil {
		return global, nil
	}
	return nil, errors.Newf(errors.ErrNoRecipe, "no recipe for package %s and no global recipe", pkg.Name).
		WithDetail("package", pkg.Name)
}
