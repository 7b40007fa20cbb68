// Package paths provides centralized path handling for schemer.
// It implements XDG Base Directory specification compliance for the
// user-level and system-level roots that hold configuration files and
// template directories.
package paths
