package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/schemer/pkg/config"
	"github.com/arthur-debert/schemer/pkg/filesystem"
	"github.com/arthur-debert/schemer/pkg/paths"
	"github.com/arthur-debert/schemer/pkg/types"
)

// Fixed roots used by in-memory environments
const (
	ProjectDir = "/project"
	UserDir    = "/home/user/.config/schemer"
	SystemDir  = "/etc/xdg/schemer"
)

// TestEnvironment bundles an in-memory filesystem with the directories the
// template search chain uses.
type TestEnvironment struct {
	FS types.FS

	ProjectDir string
	UserDir    string
	SystemDir  string

	t *testing.T
}

// NewTestEnvironment creates an empty in-memory environment
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	return &TestEnvironment{
		FS:         filesystem.NewMemoryFS(),
		ProjectDir: ProjectDir,
		UserDir:    UserDir,
		SystemDir:  SystemDir,
		t:          t,
	}
}

// WriteFile creates path with content, creating parent directories
func (e *TestEnvironment) WriteFile(path, content string) string {
	e.t.Helper()
	if err := e.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := e.FS.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path, failing the test if it is missing
func (e *TestEnvironment) ReadFile(path string) string {
	e.t.Helper()
	data, err := e.FS.ReadFile(path)
	if err != nil {
		e.t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path exists
func (e *TestEnvironment) Exists(path string) bool {
	_, err := e.FS.Stat(path)
	return err == nil
}

// UserTemplate writes a template into the user templates directory
func (e *TestEnvironment) UserTemplate(kind types.ScriptKind, content string) string {
	return e.WriteFile(filepath.Join(paths.TemplatesDirFor(e.UserDir), kind.TemplateFile()), content)
}

// SystemTemplate writes a template into the system templates directory
func (e *TestEnvironment) SystemTemplate(kind types.ScriptKind, content string) string {
	return e.WriteFile(filepath.Join(paths.TemplatesDirFor(e.SystemDir), kind.TemplateFile()), content)
}

// Config builds a configuration reader rooted at the environment's user and
// system directories. Keys may be dot-flattened.
func (e *TestEnvironment) Config(values map[string]interface{}) config.Reader {
	e.t.Helper()
	if values == nil {
		values = map[string]interface{}{}
	}
	cfg, err := config.NewFromMap(values, e.UserDir, e.SystemDir)
	if err != nil {
		e.t.Fatalf("failed to build config: %v", err)
	}
	return cfg
}

// Change returns a change whose scripts live under the project directory
func (e *TestEnvironment) Change(name string, requires, conflicts []string) types.Change {
	return types.Change{
		Name:      name,
		Requires:  requires,
		Conflicts: conflicts,
		Paths:     types.ChangePaths(e.ProjectDir, types.DefaultScriptDirs(), name, "sql"),
	}
}
