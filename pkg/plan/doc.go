// Package plan reads and appends to the plan file, the ordered list of
// changes a project deploys.
//
// A plan is line oriented:
//
//	%syntax-version=1.0.0
//	%project=flipr
//
//	users 2026-10-18T12:00:00Z Marge N. <marge@example.com> # Creates users.
//	widgets [users !gadgets] 2026-10-18T12:05:00Z Marge N. <marge@example.com>
//
// Lines other than pragmas and change lines (comments, tags, blank lines)
// are kept verbatim when the plan is rewritten.
package plan
