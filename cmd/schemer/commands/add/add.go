package add

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/schemer/cmd/schemer/internal/cli"
	"github.com/arthur-debert/schemer/pkg/commands/addchange"
	"github.com/arthur-debert/schemer/pkg/errors"
	"github.com/arthur-debert/schemer/pkg/plan"
	"github.com/arthur-debert/schemer/pkg/scaffold"
	"github.com/arthur-debert/schemer/pkg/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type flags struct {
	requires    []string
	conflicts   []string
	set         []string
	templateDir string
	templates   [types.NumScriptKinds]string
	with        []string
	without     []string
	notes       []string
}

// NewCommand creates the add command
func NewCommand(g *cli.Globals) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:     "add <change>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			scaffoldOpts, err := f.scaffoldOptions()
			if err != nil {
				return err
			}

			cfg, p, err := g.LoadConfig()
			if err != nil {
				return err
			}

			result, err := addchange.AddChange(cmd.Context(), addchange.AddChangeOptions{
				Name:       args[0],
				Requires:   f.requires,
				Conflicts:  f.conflicts,
				Notes:      f.notes,
				Scaffold:   scaffoldOpts,
				Config:     cfg,
				ProjectDir: p.ProjectDir(),
				Lock:       plan.LockDir(p.LocksDirPath()),
			})
			if result != nil {
				if renderErr := g.Render(cmd.OutOrStdout(), result); renderErr != nil {
					return renderErr
				}
			}
			if err != nil {
				return fmt.Errorf(MsgErrAddChange, err)
			}
			return nil
		},
	}

	f.register(cmd.Flags())

	_ = cmd.RegisterFlagCompletionFunc("with", completeKinds)
	_ = cmd.RegisterFlagCompletionFunc("without", completeKinds)

	return cmd
}

func (f *flags) register(fl *pflag.FlagSet) {
	fl.StringArrayVarP(&f.requires, "requires", "r", nil, MsgFlagRequires)
	fl.StringArrayVarP(&f.conflicts, "conflicts", "c", nil, MsgFlagConflicts)
	fl.StringArrayVarP(&f.set, "set", "s", nil, MsgFlagSet)
	fl.StringVar(&f.templateDir, "template-directory", "", MsgFlagTemplateDir)
	for _, kind := range types.ScriptKinds {
		fl.StringVar(&f.templates[kind], kind.String()+"-template", "", fmt.Sprintf(MsgFlagTemplateFile, kind))
	}
	fl.StringArrayVar(&f.with, "with", nil, MsgFlagWith)
	fl.StringArrayVar(&f.without, "without", nil, MsgFlagWithout)
	fl.StringArrayVarP(&f.notes, "note", "n", nil, MsgFlagNote)
}

func completeKinds(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, kind := range types.ScriptKinds {
		names = append(names, kind.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// scaffoldOptions turns the template-related flags into scaffold.Options
func (f *flags) scaffoldOptions() (scaffold.Options, error) {
	opts := scaffold.Options{TemplateDirectory: f.templateDir}

	vars, err := ParseSet(f.set)
	if err != nil {
		return opts, err
	}
	opts.Variables = vars

	for _, kind := range types.ScriptKinds {
		opts.Kinds[kind].TemplatePath = f.templates[kind]
	}

	enabled, err := ParseKindToggles(f.with, f.without)
	if err != nil {
		return opts, err
	}
	for _, kind := range types.ScriptKinds {
		opts.Kinds[kind].Enabled = enabled[kind]
	}
	return opts, nil
}

// ParseSet converts key=value pairs into variables. A key given more than
// once becomes a list of its values in order.
func ParseSet(pairs []string) (map[string]interface{}, error) {
	vars := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrBadSet, pair)
		}

		switch prev := vars[key].(type) {
		case nil:
			vars[key] = value
		case string:
			vars[key] = []string{prev, value}
		case []string:
			vars[key] = append(prev, value)
		}
	}
	return vars, nil
}

// ParseKindToggles maps --with and --without to per-kind overrides; kinds
// named by neither stay nil.
func ParseKindToggles(with, without []string) ([types.NumScriptKinds]*bool, error) {
	var out [types.NumScriptKinds]*bool

	apply := func(names []string, value bool) error {
		for _, name := range names {
			kind, err := types.ParseScriptKind(name)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid script kind")
			}
			if out[kind] != nil && *out[kind] != value {
				return errors.Newf(errors.ErrInvalidInput, MsgErrKindConflict, kind)
			}
			v := value
			out[kind] = &v
		}
		return nil
	}

	if err := apply(with, true); err != nil {
		return out, err
	}
	if err := apply(without, false); err != nil {
		return out, err
	}
	return out, nil
}
