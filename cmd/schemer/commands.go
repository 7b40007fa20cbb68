package schemer

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/schemer/cmd/schemer/commands/add"
	"github.com/arthur-debert/schemer/cmd/schemer/commands/genconfig"
	"github.com/arthur-debert/schemer/cmd/schemer/commands/templates"
	"github.com/arthur-debert/schemer/cmd/schemer/internal/cli"
	"github.com/arthur-debert/schemer/internal/version"
	"github.com/arthur-debert/schemer/pkg/cobrax/topics"
	"github.com/arthur-debert/schemer/pkg/logging"
	"github.com/arthur-debert/schemer/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&cli.Globals{})
}

func newRootCmd(g *cli.Globals) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "schemer",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.Verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but still fail
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&g.Verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVarP(&g.Output, "output", "o", "auto", MsgFlagOutput)
	pf.StringVar(&g.ConfigFile, "config", "", MsgFlagConfig)
	pf.StringVar(&g.TopDir, "top-dir", "", MsgFlagTopDir)
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(add.NewCommand(g))
	rootCmd.AddCommand(templates.NewCommand(g))
	rootCmd.AddCommand(genconfig.NewCommand(g))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	sub, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		err = topics.InitializeWithOptions(rootCmd, sub, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.Markdown{},
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd == cmd.Root() {
				return fmt.Errorf(MsgErrNoHelp)
			}
			if helpCmd.RunE != nil {
				return helpCmd.RunE(helpCmd, []string{"topics"})
			}
			if helpCmd.Run != nil {
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return fmt.Errorf(MsgErrNoHelp)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
