// Package filesystem provides filesystem implementations for mtr.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem and an afero-backed filesystem used for
// in-memory testing of the ledger store and the cleanup paths.
package filesystem
