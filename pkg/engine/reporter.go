package engine

import "github.com/arthur-debert/mtr/pkg/types"

// Reporter receives user-facing lifecycle events
type Reporter interface {
	// Skipped is called when name needs no work, with the reason why.
	Skipped(name, reason string)
	Installing(pkg types.Package)
	Installed(pkg types.Package)
	Removing(pkg types.Package)
	Removed(pkg types.Package)
	// Kept is called when dep survives a removal because the packages in
	// requiredBy still depend on it.
	Kept(dep string, requiredBy []string)
	Warning(msg string)
}

// NopReporter discards all events
type NopReporter struct{}

func (NopReporter) Skipped(string, string) {}
func (NopReporter) Installing(types.Package) {}
func (NopReporter) Installed(types.Package) {}
func (NopReporter) Removing(types.Package) {}
func (NopReporter) Removed(types.Package) {}
func (NopReporter) Kept(string, []string) {}
func (NopReporter) Warning(string) {}
