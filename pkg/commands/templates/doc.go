// Package templates implements "schemer templates": listing which template
// governs each script kind and installing the built-in templates.
package templates
