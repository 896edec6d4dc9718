// Package engine implements the package lifecycle: recursive install,
// reference-aware removal and version-driven update.
//
// # Recheck protocol
//
// Installing or removing one package may run arbitrary external programs
// and recurse into its dependencies, either of which can change the
// ledger. The engine therefore never trusts a snapshot across a recursion:
// it reloads the ledger before descending (pre-check) and again after all
// dependencies are handled (post-check). If the post-check finds that the
// work was already done, the package is left as is.
//
// # Cycles
//
// Each top-level Install or Remove call colors the names (or removal keys)
// it visits. A node that is reached again while still in progress closes a
// cycle and aborts the whole request with CYCLE_DETECTED. Nodes finished
// earlier in the same request are not cycles, which is what makes diamond
// shaped dependency graphs work.
//
// # Failure
//
// NOT_FOUND, CYCLE_DETECTED, NO_RECIPE and STEP_FAILED abort the request.
// Packages installed before the failure stay installed; there is no
// rollback. Cleanup and archive deletion failures are only warnings.
package engine
