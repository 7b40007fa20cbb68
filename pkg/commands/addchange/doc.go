// Package addchange implements "schemer add": it validates the change name,
// scaffolds the deploy, revert and test scripts and registers the change in
// the plan.
//
// The plan is checked first but only written after every script was
// scaffolded, so a fatal scaffolding error leaves the plan untouched.
package addchange
