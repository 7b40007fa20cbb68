// Package cli holds the state shared by schemer's subcommands: global flags,
// configuration loading and result rendering.
package cli

import (
	"io"

	"github.com/arthur-debert/schemer/pkg/config"
	"github.com/arthur-debert/schemer/pkg/logging"
	"github.com/arthur-debert/schemer/pkg/paths"
	"github.com/arthur-debert/schemer/pkg/ui"
)

// Globals are the persistent flags of the root command
type Globals struct {
	Verbosity  int
	Output     string
	ConfigFile string
	TopDir     string
	// ProjectDir is the working directory unless set (tests set it)
	ProjectDir string
}

// Paths resolves the project, user and system directories
func (g *Globals) Paths() (*paths.Paths, error) {
	return paths.New(g.ProjectDir)
}

// LoadConfig layers the configuration files and applies flag overrides
func (g *Globals) LoadConfig() (*config.Config, *paths.Paths, error) {
	log := logging.GetLogger("cli")

	p, err := g.Paths()
	if err != nil {
		return nil, nil, err
	}

	opts := config.LoadOptions{
		SystemFile:  p.SystemConfigPath(),
		UserFile:    p.UserConfigPath(),
		ProjectFile: p.ProjectConfigPath(),
		UserDir:     p.UserDir(),
		SystemDir:   p.SystemDir(),
	}
	if g.ConfigFile != "" {
		opts.ProjectFile = g.ConfigFile
		opts.ProjectFileRequired = true
	}

	cfg, err := config.Load(opts)
	if err != nil {
		return nil, nil, err
	}

	if g.TopDir != "" {
		if err := cfg.Override(map[string]interface{}{config.KeyTopDir: g.TopDir}); err != nil {
			return nil, nil, err
		}
	}

	log.Debug().Strs("sources", cfg.Sources()).Str("project", p.ProjectDir()).Msg("Configuration loaded")
	return cfg, p, nil
}

// Render writes result in the format selected by --output
func (g *Globals) Render(w io.Writer, result interface{}) error {
	format, err := ui.ParseFormat(g.Output)
	if err != nil {
		return err
	}
	return ui.Render(format, w, result)
}
