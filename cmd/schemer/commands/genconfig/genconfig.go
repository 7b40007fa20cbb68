package genconfig

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/schemer/cmd/schemer/internal/cli"
	"github.com/arthur-debert/schemer/pkg/commands/genconfig"
	"github.com/arthur-debert/schemer/pkg/paths"
	"github.com/spf13/cobra"
)

// NewCommand creates the gen-config command
func NewCommand(g *cli.Globals) *cobra.Command {
	var (
		write bool
		file  string
	)

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := g.Paths()
			if err != nil {
				return err
			}
			target := file
			if target == "" {
				target = paths.ProjectConfigFile
			}
			if !filepath.IsAbs(target) {
				target = filepath.Join(p.ProjectDir(), target)
			}

			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{Write: write, Path: target})
			if err != nil {
				return fmt.Errorf(MsgErrGen, err)
			}
			return g.Render(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().StringVarP(&file, "file", "f", "", MsgFlagFile)
	return cmd
}
