// Package commands implements mtr's user-facing operations on top of the
// engine. Each function here corresponds to one CLI command; the cobra
// layer only parses arguments and maps the result to an exit status.
//
// Batch commands attempt every requested package independently: a failure
// on one name is reported and the next name is still processed.
package commands
