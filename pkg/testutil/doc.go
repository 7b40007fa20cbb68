// Package testutil provides utilities for testing schemer components.
//
// Key components:
//   - TestEnvironment: an in-memory filesystem plus user and system roots,
//     a project directory and configuration built from plain maps
//   - FaultyFS: a types.FS wrapper that injects errors per operation and path
//
// Usage guidelines:
//   - Prefer in-memory environments; only filesystem tests need t.TempDir
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
