// Package index loads the package index: the catalogue of packages mtr
// knows how to build.
//
// The index is a {"packages": [...]} document, the same shape as the
// ledger. It can be served over http(s) or read from a local file, and may
// be written as JSON, YAML or TOML. Remote indexes are cached so that mtr
// keeps working when the index host is unreachable.
package index
