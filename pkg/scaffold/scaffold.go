package scaffold

import (
	"github.com/arthur-debert/schemer/pkg/config"
	"github.com/arthur-debert/schemer/pkg/logging"
	"github.com/arthur-debert/schemer/pkg/templates"
	"github.com/arthur-debert/schemer/pkg/types"
)

// TemplateSpec holds the command-line settings for one script kind
type TemplateSpec struct {
	// TemplatePath bypasses the search chain when set
	TemplatePath string
	// Enabled overrides add-change.with_<kind> when non-nil
	Enabled *bool
}

// Options configures a Scaffolder. Zero values defer to configuration.
type Options struct {
	// TemplateDirectory is searched before the user and system templates
	TemplateDirectory string
	// Kinds is indexed by types.ScriptKind
	Kinds [types.NumScriptKinds]TemplateSpec
	// Variables are --set overrides, applied over add-change.variables
	Variables map[string]interface{}
}

// Event records the outcome for one generated script
type Event struct {
	Kind     types.ScriptKind `json:"-"`
	KindName string           `json:"kind"`
	Path     string           `json:"path"`
	Template string           `json:"template"`
	Outcome  Outcome          `json:"outcome"`
}

// Scaffolder generates the scripts of a change. It is built once from the
// command options and configuration and is read-only afterwards.
type Scaffolder struct {
	fs        types.FS
	resolver  *templates.Resolver
	emitter   *Emitter
	enabled   [types.NumScriptKinds]bool
	variables types.Variables
}

// New builds a Scaffolder
func New(fs types.FS, cfg config.Reader, opts Options) *Scaffolder {
	var resolverOpts templates.ResolverOptions
	resolverOpts.TemplateDirectory = opts.TemplateDirectory

	s := &Scaffolder{
		fs:      fs,
		emitter: NewEmitter(fs),
	}
	for _, kind := range types.ScriptKinds {
		resolverOpts.TemplatePaths[kind] = opts.Kinds[kind].TemplatePath
		s.enabled[kind] = IsEnabled(cfg, kind, opts.Kinds[kind].Enabled)
	}
	s.resolver = templates.NewResolver(fs, cfg, resolverOpts)
	s.variables = MergeVariables(cfg.Section(config.KeyVariables), opts.Variables)

	return s
}

// IsEnabled decides whether kind is generated: the command-line flag wins
// over add-change.with_<kind>, which wins over the default of true.
func IsEnabled(cfg config.Reader, kind types.ScriptKind, flag *bool) bool {
	if flag != nil {
		return *flag
	}
	if v, set := cfg.Bool(config.WithKey(kind.String())); set {
		return v
	}
	return true
}

// Enabled reports whether kind will be generated
func (s *Scaffolder) Enabled(kind types.ScriptKind) bool {
	return s.enabled[kind]
}

// Resolver returns the template resolver in use
func (s *Scaffolder) Resolver() *templates.Resolver {
	return s.resolver
}

// Variables returns the variables rendered into the scripts of change
func (s *Scaffolder) Variables(change types.Change) types.Variables {
	return InjectReserved(s.variables, change)
}

// Scaffold generates the scripts of change in deploy, revert, test order.
// On error it returns the events recorded so far; later kinds are not
// attempted.
func (s *Scaffolder) Scaffold(change types.Change) ([]Event, error) {
	log := logging.GetLogger("scaffold")
	vars := s.Variables(change)

	var events []Event
	for _, kind := range types.ScriptKinds {
		if !s.enabled[kind] {
			log.Debug().Str("kind", kind.String()).Msg("Script kind disabled, skipping")
			continue
		}

		path, err := s.resolver.Resolve(kind)
		if err != nil {
			return events, err
		}

		text, err := templates.Load(s.fs, path)
		if err != nil {
			return events, err
		}

		content, err := templates.Render(text, vars)
		if err != nil {
			return events, err
		}

		target := change.Paths[kind]
		outcome, err := s.emitter.Emit(target, content)
		if err != nil {
			return events, err
		}

		log.Info().
			Str("kind", kind.String()).
			Str("path", target).
			Str("template", path).
			Stringer("outcome", outcome).
			Msg("Scaffolded script")

		events = append(events, Event{
			Kind:     kind,
			KindName: kind.String(),
			Path:     target,
			Template: path,
			Outcome:  outcome,
		})
	}

	return events, nil
}
