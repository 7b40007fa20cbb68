// Package scaffold generates the deploy, revert and test scripts of a new
// change.
//
// For each script kind, in order, the Scaffolder skips kinds that are
// disabled, resolves the template, renders it with the merged variables and
// hands the result to the Emitter. The Emitter never overwrites: a file that
// already exists is reported as Skipped, so scaffolding the same change twice
// leaves hand-edited scripts alone.
//
// Any error aborts the remaining kinds. Files created before the failure are
// kept.
package scaffold
