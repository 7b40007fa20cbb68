package genconfig

import (
	"github.com/arthur-debert/schemer/pkg/config"
	"github.com/arthur-debert/schemer/pkg/filesystem"
	"github.com/arthur-debert/schemer/pkg/logging"
	"github.com/arthur-debert/schemer/pkg/scaffold"
	"github.com/arthur-debert/schemer/pkg/types"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// Write saves the sample to Path instead of only returning it
	Write bool
	// Path is the file written in write mode
	Path string
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// GenConfigResult holds the sample configuration and what was written
type GenConfigResult struct {
	ConfigContent string   `json:"configContent"`
	FilesWritten  []string `json:"filesWritten"`
	FilesSkipped  []string `json:"filesSkipped"`
}

// GenConfig outputs or writes a commented sample configuration
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	content, err := config.GenerateConfigContent()
	if err != nil {
		return nil, err
	}

	result := &GenConfigResult{
		ConfigContent: content,
		FilesWritten:  []string{},
		FilesSkipped:  []string{},
	}

	// If not writing, just return the content
	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	target := opts.Path
	if target == "" {
		target = "schemer.toml"
	}

	outcome, err := scaffold.NewEmitter(fs).Emit(target, content)
	if err != nil {
		return result, err
	}
	if outcome == scaffold.Skipped {
		logger.Warn().Str("path", target).Msg("Config file already exists, skipping")
		result.FilesSkipped = append(result.FilesSkipped, target)
		return result, nil
	}

	logger.Info().Str("path", target).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, target)
	return result, nil
}
