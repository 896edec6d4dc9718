// Package ledger persists the record of installed packages.
//
// The ledger is a single JSON document of the form {"packages": [...]}.
// Readers work on an immutable Snapshot; every change produces a new
// Snapshot which is written back as a whole. Callers that need current
// state reload it rather than trusting a copy they took earlier, because
// recursive installs and removals change the ledger underneath them.
//
// A missing ledger is an empty ledger. A ledger that cannot be read or
// parsed is also treated as empty, with a warning, so that a damaged file
// never blocks the package manager.
package ledger
