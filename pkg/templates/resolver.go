package templates

import (
	"path/filepath"

	"github.com/arthur-debert/schemer/pkg/config"
	"github.com/arthur-debert/schemer/pkg/errors"
	"github.com/arthur-debert/schemer/pkg/logging"
	"github.com/arthur-debert/schemer/pkg/paths"
	"github.com/arthur-debert/schemer/pkg/types"
)

// SearchChain is the ordered list of directories consulted when a kind has
// no explicit template. Empty entries stand for absent directories.
type SearchChain []string

// NewSearchChain builds the chain from the template directory option and the
// user and system roots.
func NewSearchChain(templateDir, userRoot, systemRoot string) SearchChain {
	return SearchChain{
		templateDir,
		paths.TemplatesDirFor(userRoot),
		paths.TemplatesDirFor(systemRoot),
	}
}

// ResolverOptions carries command-line values, which win over configuration
type ResolverOptions struct {
	// TemplateDirectory replaces add-change.template_directory
	TemplateDirectory string
	// TemplatePaths replace add-change.<kind>_template, indexed by kind
	TemplatePaths [types.NumScriptKinds]string
}

// Resolver maps each script kind to the template file that governs it
type Resolver struct {
	fs        types.FS
	overrides [types.NumScriptKinds]string
	chain     SearchChain
}

// NewResolver combines command-line options with configuration once; the
// result is read-only.
func NewResolver(fs types.FS, cfg config.Reader, opts ResolverOptions) *Resolver {
	r := &Resolver{fs: fs}

	for _, kind := range types.ScriptKinds {
		r.overrides[kind] = opts.TemplatePaths[kind]
		if r.overrides[kind] == "" {
			r.overrides[kind] = cfg.String(config.TemplateKey(kind.String()))
		}
	}

	templateDir := opts.TemplateDirectory
	if templateDir == "" {
		templateDir = cfg.String(config.KeyTemplateDirectory)
	}
	r.chain = NewSearchChain(templateDir, cfg.UserDir(), cfg.SystemDir())

	return r
}

// Chain returns a copy of the search chain
func (r *Resolver) Chain() SearchChain {
	return append(SearchChain(nil), r.chain...)
}

// Override returns the explicit template path for kind, if any
func (r *Resolver) Override(kind types.ScriptKind) string {
	return r.overrides[kind]
}

// Resolve returns the template path for kind
func (r *Resolver) Resolve(kind types.ScriptKind) (string, error) {
	logger := logging.GetLogger("templates.resolve")

	if override := r.overrides[kind]; override != "" {
		logger.Debug().Str("kind", kind.String()).Str("template", override).Msg("Using explicit template")
		return override, nil
	}

	var searched []string
	for _, dir := range r.chain {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, kind.TemplateFile())
		searched = append(searched, candidate)

		info, err := r.fs.Stat(candidate)
		if err != nil || info.IsDir() {
			logger.Trace().Str("kind", kind.String()).Str("candidate", candidate).Msg("Template candidate not present")
			continue
		}

		logger.Debug().Str("kind", kind.String()).Str("template", candidate).Msg("Found template in search chain")
		return candidate, nil
	}

	return "", errors.Newf(errors.ErrTemplateNotFound, "cannot find %s template", kind).
		WithDetail("kind", kind.String()).
		WithDetail("searched", searched)
}
