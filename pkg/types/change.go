package types

import (
	"path/filepath"
	"time"
)

// Change is a named unit of schema modification registered in a plan
type Change struct {
	Name      string
	Requires  []string
	Conflicts []string
	Note      string

	PlannerName  string
	PlannerEmail string
	PlannedAt    time.Time

	// Paths holds the script location for each kind
	Paths [NumScriptKinds]string
}

// ScriptDirs names the directory holding each kind of script
type ScriptDirs [NumScriptKinds]string

// DefaultScriptDirs returns the per-kind directories used when none are configured
func DefaultScriptDirs() ScriptDirs {
	return ScriptDirs{"deploy", "revert", "test"}
}

// ChangePaths computes the script path for every kind. Relative kind
// directories are resolved against topDir; an empty extension yields names
// without a suffix.
func ChangePaths(topDir string, dirs ScriptDirs, name, ext string) [NumScriptKinds]string {
	var out [NumScriptKinds]string
	file := name
	if ext != "" {
		file = name + "." + ext
	}
	for _, kind := range ScriptKinds {
		dir := dirs[kind]
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(topDir, dir)
		}
		out[kind] = filepath.Join(dir, file)
	}
	return out
}
