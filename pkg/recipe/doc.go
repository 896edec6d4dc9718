// Package recipe turns a package's build recipe into external process
// invocations.
//
// A recipe is an ordered list of steps, each a program and its arguments.
// Arguments may reference package fields through the placeholders
// {archive}, {source}, {dirname}, {version} and {name}. Steps run in order
// and stop at the first failure; a package whose recipe fails is never
// recorded as installed.
//
// When a package has no recipe of its own the global recipe is used. The
// executor never reads or writes the ledger.
package recipe
