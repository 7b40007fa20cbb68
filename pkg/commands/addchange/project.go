package addchange

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/arthur-debert/schemer/pkg/config"
	"github.com/arthur-debert/schemer/pkg/types"
)

// Layout is the on-disk project layout derived from configuration
type Layout struct {
	Project   string
	TopDir    string
	PlanFile  string
	Extension string
	Dirs      types.ScriptDirs
}

// ResolveLayout reads core.* settings, resolving relative paths against
// projectDir.
func ResolveLayout(cfg config.Reader, projectDir string) Layout {
	l := Layout{
		Project:   cfg.String(config.KeyProject),
		TopDir:    cfg.String(config.KeyTopDir),
		Extension: cfg.String(config.KeyExtension),
		Dirs:      types.DefaultScriptDirs(),
	}
	if l.Project == "" {
		l.Project = filepath.Base(projectDir)
	}
	if l.TopDir == "" {
		l.TopDir = "."
	}
	if !filepath.IsAbs(l.TopDir) {
		l.TopDir = filepath.Join(projectDir, l.TopDir)
	}

	planFile := cfg.String(config.KeyPlanFile)
	if planFile == "" {
		planFile = "schemer.plan"
	}
	if !filepath.IsAbs(planFile) {
		planFile = filepath.Join(l.TopDir, planFile)
	}
	l.PlanFile = planFile

	for _, kind := range types.ScriptKinds {
		if dir := cfg.String(config.DirKey(kind.String())); dir != "" {
			l.Dirs[kind] = dir
		}
	}
	return l
}

// ChangePaths returns the script paths of the change called name
func (l Layout) ChangePaths(name string) [types.NumScriptKinds]string {
	return types.ChangePaths(l.TopDir, l.Dirs, name, l.Extension)
}

// Planner returns the name and email recorded for new changes: user.name and
// user.email, falling back to the current OS user.
func Planner(cfg config.Reader) (name, email string) {
	name = cfg.String(config.KeyUserName)
	email = cfg.String(config.KeyUserEmail)
	if name != "" && email != "" {
		return name, email
	}

	login := "unknown"
	fullName := ""
	if u, err := user.Current(); err == nil {
		login = u.Username
		fullName = u.Name
	}
	if name == "" {
		name = fullName
		if name == "" {
			name = login
		}
	}
	if email == "" {
		host, err := os.Hostname()
		if err != nil || host == "" {
			host = "localhost"
		}
		email = login + "@" + host
	}
	return name, email
}
