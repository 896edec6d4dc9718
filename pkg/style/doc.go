// Package style renders mtr's terminal output: status lines for lifecycle
// events, tables for package listings and markdown package details.
//
// Colors are only emitted when stdout is a terminal that supports them and
// NO_COLOR is unset.
package style
