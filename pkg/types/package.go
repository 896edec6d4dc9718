package types

import (
	"fmt"
	"slices"
)

// Step is a single external command of a recipe. Args may contain the
// placeholders {archive}, {source}, {dirname}, {version} and {name}.
type Step struct {
	Program string   `json:"program" yaml:"program" toml:"program"`
	Args    []string `json:"args" yaml:"args" toml:"args"`
}

// Recipe is an ordered sequence of steps that materializes a package.
type Recipe struct {
	Steps []Step `json:"steps" yaml:"steps" toml:"steps"`
}

// Clone returns a deep copy of the recipe.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	steps := make([]Step, len(r.Steps))
	for i, s := range r.Steps {
		steps[i] = Step{Program: s.Program, Args: slices.Clone(s.Args)}
	}
	return &Recipe{Steps: steps}
}

// Package holds identity and build facts for one installable unit.
type Package struct {
	Name         string   `json:"name" yaml:"name" toml:"name"`
	Version      string   `json:"version" yaml:"version" toml:"version"`
	Source       string   `json:"source" yaml:"source" toml:"source"`
	Archive      string   `json:"archive" yaml:"archive" toml:"archive"`
	Dirname      string   `json:"dirname" yaml:"dirname" toml:"dirname"`
	Dependencies []string `json:"dependencies" yaml:"dependencies" toml:"dependencies"`
	Recipe       *Recipe  `json:"recipe,omitempty" yaml:"recipe,omitempty" toml:"recipe,omitempty"`
}

// Clone returns a deep copy so that work in flight is isolated from later
// ledger or index mutations.
func (p Package) Clone() Package {
	c := p
	c.Dependencies = slices.Clone(p.Dependencies)
	c.Recipe = p.Recipe.Clone()
	return c
}

// RemovalKey identifies an installed package for removal. Packages are
// keyed by their extraction directory; packages without one fall back to
// their name.
func (p Package) RemovalKey() string {
	if p.Dirname != "" {
		return p.Dirname
	}
	return p.Name
}

// DependsOn reports whether name is listed among the package dependencies.
func (p Package) DependsOn(name string) bool {
	return slices.Contains(p.Dependencies, name)
}

// Validate checks the static invariants of a single package record.
func (p Package) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("package name is required")
	}
	if p.DependsOn(p.Name) {
		return fmt.Errorf("package %q depends on itself", p.Name)
	}
	return nil
}

// PackageList is the document shape shared by the package index and the
// installed-package ledger.
type PackageList struct {
	Packages []Package `json:"packages" yaml:"packages" toml:"packages"`
}
