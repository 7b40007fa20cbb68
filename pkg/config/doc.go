// Package config handles configuration management for schemer.
// It loads layered TOML configuration (embedded defaults, system, user and
// project files, then environment variables) with koanf and exposes it to
// the rest of the program through the Reader interface, which callers
// receive explicitly instead of reaching for a global.
package config
