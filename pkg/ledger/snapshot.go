package ledger

import (
	"github.com/arthur-debert/mtr/pkg/types"
)

// Snapshot is an immutable, ordered view of installed package records
type Snapshot struct {
	packages []types.Package
}

// NewSnapshot builds a snapshot from the given records
func NewSnapshot(pkgs ...types.Package) Snapshot {
	s := Snapshot{packages: make([]types.Package, 0, len(pkgs))}
	for _, p := range pkgs {
		s.packages = append(s.packages, p.Clone())
	}
	return s
}

// Packages returns a copy of the records in ledger order
func (s Snapshot) Packages() []types.Package {
	out := make([]types.Package, len(s.packages))
	for i, p := range s.packages {
		out[i] = p.Clone()
	}
	return out
}

// Len returns the number of records
func (s Snapshot) Len() int {
	return len(s.packages)
}

// FindByName returns the first record with the given name
func (s Snapshot) FindByName(name string) (types.Package, bool) {
	for _, p := range s.packages {
		if p.Name == name {
			return p.Clone(), true
		}
	}
	return types.Package{}, false
}

// FindByKey returns the first record with the given removal key
func (s Snapshot) FindByKey(key string) (types.Package, bool) {
	for _, p := range s.packages {
		if p.RemovalKey() == key {
			return p.Clone(), true
		}
	}
	return types.Package{}, false
}

// HasName reports whether a package with this name is installed
func (s Snapshot) HasName(name string) bool {
	_, ok := s.FindByName(name)
	return ok
}

// HasKey reports whether a record with this removal key exists
func (s Snapshot) HasKey(key string) bool {
	_, ok := s.FindByKey(key)
	return ok
}

// ReferencedByOther reports whether any record other than the one keyed by
// exceptKey lists dep among its dependencies.
func (s Snapshot) ReferencedByOther(dep, exceptKey string) bool {
	for _, p := range s.packages {
		if p.RemovalKey() == exceptKey {
			continue
		}
		if p.DependsOn(dep) {
			return true
		}
	}
	return false
}

// Dependents returns the names of records, other than the one keyed by
// exceptKey, that list dep among their dependencies.
func (s Snapshot) Dependents(dep, exceptKey string) []string {
	var out []string
	for _, p := range s.packages {
		if p.RemovalKey() != exceptKey && p.DependsOn(dep) {
			out = append(out, p.Name)
		}
	}
	return out
}

// Append returns a new snapshot with a copy of pkg added at the end
func (s Snapshot) Append(pkg types.Package) Snapshot {
	next := Snapshot{packages: make([]types.Package, 0, len(s.packages)+1)}
	next.packages = append(next.packages, s.packages...)
	next.packages = append(next.packages, pkg.Clone())
	return next
}

// RemoveKey returns a new snapshot without the records keyed by key
func (s Snapshot) RemoveKey(key string) Snapshot {
	next := Snapshot{packages: make([]types.Package, 0, len(s.packages))}
	for _, p := range s.packages {
		if p.RemovalKey() != key {
			next.packages = append(next.packages, p)
		}
	}
	return next
}
