package templates

import (
	"path/filepath"

	"github.com/arthur-debert/schemer/pkg/config"
	"github.com/arthur-debert/schemer/pkg/errors"
	"github.com/arthur-debert/schemer/pkg/filesystem"
	"github.com/arthur-debert/schemer/pkg/logging"
	"github.com/arthur-debert/schemer/pkg/paths"
	"github.com/arthur-debert/schemer/pkg/scaffold"
	tmpl "github.com/arthur-debert/schemer/pkg/templates"
	"github.com/arthur-debert/schemer/pkg/types"
)

// InstallOptions defines the options for the Install command.
type InstallOptions struct {
	Config config.Reader
	// System installs into the system templates directory instead of the user one
	System bool
	// Dir installs into an explicit directory
	Dir string
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// InstalledFile reports one template written (or left alone) by Install
type InstalledFile struct {
	Kind    string           `json:"kind"`
	Path    string           `json:"path"`
	Outcome scaffold.Outcome `json:"outcome"`
}

// InstallResult is the output of Install
type InstallResult struct {
	Dir   string          `json:"dir"`
	Files []InstalledFile `json:"files"`
}

// Install writes the built-in templates. Existing templates are never
// replaced.
func Install(opts InstallOptions) (*InstallResult, error) {
	log := logging.GetLogger("commands.templates")

	if opts.Config == nil {
		return nil, errors.New(errors.ErrInternal, "no configuration given")
	}
	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	dir := opts.Dir
	if dir == "" {
		root := opts.Config.UserDir()
		if opts.System {
			root = opts.Config.SystemDir()
		}
		dir = paths.TemplatesDirFor(root)
	}
	if dir == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no templates directory to install into")
	}

	emitter := scaffold.NewEmitter(fs)
	result := &InstallResult{Dir: dir}
	for _, kind := range types.ScriptKinds {
		path := filepath.Join(dir, kind.TemplateFile())
		outcome, err := emitter.Emit(path, tmpl.DefaultTemplate(kind))
		if err != nil {
			return result, err
		}
		log.Info().Str("path", path).Stringer("outcome", outcome).Msg("Installed template")
		result.Files = append(result.Files, InstalledFile{Kind: kind.String(), Path: path, Outcome: outcome})
	}
	return result, nil
}
