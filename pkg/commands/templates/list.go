package templates

import (
	"github.com/arthur-debert/schemer/pkg/config"
	"github.com/arthur-debert/schemer/pkg/errors"
	"github.com/arthur-debert/schemer/pkg/filesystem"
	"github.com/arthur-debert/schemer/pkg/logging"
	"github.com/arthur-debert/schemer/pkg/scaffold"
	"github.com/arthur-debert/schemer/pkg/types"
)

// Template sources reported by List
const (
	SourceOverride = "override"
	SourceSearch   = "search"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	Config config.Reader
	// Scaffold carries the same template flags "schemer add" accepts
	Scaffold scaffold.Options
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// KindStatus describes how one script kind would be scaffolded
type KindStatus struct {
	Kind     string `json:"kind"`
	Enabled  bool   `json:"enabled"`
	Template string `json:"template,omitempty"`
	Source   string `json:"source,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ListResult is the output of List
type ListResult struct {
	Chain []string     `json:"searchChain"`
	Kinds []KindStatus `json:"kinds"`
}

// List resolves the template of every kind without rendering anything.
// Resolution failures are reported per kind rather than returned.
func List(opts ListOptions) (*ListResult, error) {
	log := logging.GetLogger("commands.templates")

	if opts.Config == nil {
		return nil, errors.New(errors.ErrInternal, "no configuration given")
	}
	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	s := scaffold.New(fs, opts.Config, opts.Scaffold)
	resolver := s.Resolver()

	result := &ListResult{}
	for _, dir := range resolver.Chain() {
		if dir != "" {
			result.Chain = append(result.Chain, dir)
		}
	}

	for _, kind := range types.ScriptKinds {
		status := KindStatus{Kind: kind.String(), Enabled: s.Enabled(kind)}

		path, err := resolver.Resolve(kind)
		switch {
		case err != nil:
			status.Error = err.Error()
		case resolver.Override(kind) != "":
			status.Template, status.Source = path, SourceOverride
		default:
			status.Template, status.Source = path, SourceSearch
		}

		log.Debug().Str("kind", status.Kind).Str("template", status.Template).Msg("Resolved template")
		result.Kinds = append(result.Kinds, status)
	}

	return result, nil
}
