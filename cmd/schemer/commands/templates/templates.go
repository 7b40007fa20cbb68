package templates

import (
	"fmt"

	"github.com/arthur-debert/schemer/cmd/schemer/internal/cli"
	"github.com/arthur-debert/schemer/pkg/commands/templates"
	"github.com/arthur-debert/schemer/pkg/scaffold"
	"github.com/arthur-debert/schemer/pkg/types"
	"github.com/spf13/cobra"
)

// NewCommand creates the templates command and its subcommands
func NewCommand(g *cli.Globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "core",
	}
	cmd.AddCommand(newListCommand(g))
	cmd.AddCommand(newInstallCommand(g))
	return cmd
}

func newListCommand(g *cli.Globals) *cobra.Command {
	var (
		templateDir string
		files       [types.NumScriptKinds]string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := g.LoadConfig()
			if err != nil {
				return err
			}

			opts := scaffold.Options{TemplateDirectory: templateDir}
			for _, kind := range types.ScriptKinds {
				opts.Kinds[kind].TemplatePath = files[kind]
			}

			result, err := templates.List(templates.ListOptions{Config: cfg, Scaffold: opts})
			if err != nil {
				return fmt.Errorf(MsgErrList, err)
			}
			return g.Render(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&templateDir, "template-directory", "", "Directory searched first for <kind>.tmpl templates")
	for _, kind := range types.ScriptKinds {
		cmd.Flags().StringVar(&files[kind], kind.String()+"-template", "", fmt.Sprintf("Template file for %s scripts", kind))
	}
	return cmd
}

func newInstallCommand(g *cli.Globals) *cobra.Command {
	var (
		system bool
		dir    string
	)

	cmd := &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallEx,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if system && dir != "" {
				return fmt.Errorf(MsgErrDirFlags)
			}
			cfg, _, err := g.LoadConfig()
			if err != nil {
				return err
			}

			result, err := templates.Install(templates.InstallOptions{Config: cfg, System: system, Dir: dir})
			if result != nil {
				if renderErr := g.Render(cmd.OutOrStdout(), result); renderErr != nil {
					return renderErr
				}
			}
			if err != nil {
				return fmt.Errorf(MsgErrInstall, err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&system, "system", false, MsgFlagSystem)
	cmd.Flags().StringVar(&dir, "dir", "", MsgFlagDir)
	return cmd
}
