// Package types defines the core data model shared by mtr's packages:
// Package, Recipe and Step records as they appear in the package index and
// in the installed-package ledger, plus the FS interface used for all file
// access.
package types
