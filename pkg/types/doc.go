// Package types defines the core data types shared across schemer packages:
// script kinds, changes, template variables and the filesystem abstraction.
package types
