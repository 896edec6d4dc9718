package index

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/arthur-debert/mtr/pkg/errors"
	"github.com/arthur-debert/mtr/pkg/types"
)

// Index is an ordered, validated set of packages keyed by name
type Index struct {
	packages []types.Package
	byName   map[string]int
}

// New validates pkgs and builds an index. Names must be non-empty and
// unique, and no package may list itself as a dependency.
func New(pkgs []types.Package) (*Index, error) {
	idx := &Index{
		packages: make([]types.Package, 0, len(pkgs)),
		byName:   make(map[string]int, len(pkgs)),
	}

	for i, p := range pkgs {
		if err := p.Validate(); err != nil {
			return nil, errors.Wrapf(err, errors.ErrIndexParse, "invalid package at position %d", i).
				WithDetail("package", p.Name)
		}
		if _, dup := idx.byName[p.Name]; dup {
			return nil, errors.Newf(errors.ErrIndexParse, "duplicate package %s", p.Name).
				WithDetail("package", p.Name)
		}
		idx.byName[p.Name] = len(idx.packages)
		idx.packages = append(idx.packages, p.Clone())
	}

	return idx, nil
}

// Find returns a copy of the named package
func (i *Index) Find(name string) (types.Package, bool) {
	pos, ok := i.byName[name]
	if !ok {
		return types.Package{}, false
	}
	return i.packages[pos].Clone(), true
}

// Len returns the number of packages
func (i *Index) Len() int {
	return len(i.packages)
}

// Packages returns copies of all packages in index order
func (i *Index) Packages() []types.Package {
	out := make([]types.Package, len(i.packages))
	for n, p := range i.packages {
		out[n] = p.Clone()
	}
	return out
}

// Names returns the package names in index order
func (i *Index) Names() []string {
	names := make([]string, len(i.packages))
	for n, p := range i.packages {
		names[n] = p.Name
	}
	return names
}

// Search returns the packages whose name contains term, in index order.
// An empty term matches everything.
func (i *Index) Search(term string) []types.Package {
	var out []types.Package
	for _, p := range i.packages {
		if strings.Contains(p.Name, term) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Suggest returns up to limit package names that fuzzily match name, best
// match first. Used to hint at typos when a package is not found.
func (i *Index) Suggest(name string, limit int) []string {
	if name == "" || limit <= 0 {
		return nil
	}

	matches := fuzzy.Find(name, i.Names())
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, len(matches))
	for n, m := range matches {
		out[n] = m.Str
	}
	return out
}
