package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/schemer/pkg/errors"
	"github.com/arthur-debert/schemer/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "SCHEMER_"

// LoadOptions selects the configuration files to layer
type LoadOptions struct {
	// SystemFile is the system-level configuration file (optional)
	SystemFile string
	// UserFile is the user-level configuration file (optional)
	UserFile string
	// ProjectFile is the project-level configuration file (optional)
	ProjectFile string
	// ProjectFileRequired makes a missing ProjectFile an error, used when the
	// file was named explicitly on the command line
	ProjectFileRequired bool

	// UserDir and SystemDir are the roots reported through Reader
	UserDir   string
	SystemDir string

	// SkipEnv disables the environment layer
	SkipEnv bool
}

// Load builds the layered configuration: embedded defaults, then system,
// user and project files, then SCHEMER_* environment variables.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")
	cfg := &Config{k: k, userDir: opts.UserDir, systemDir: opts.SystemDir}

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	cfg.sources = append(cfg.sources, "defaults")

	// 2-4. Load files from least to most specific
	layers := []struct {
		name     string
		path     string
		required bool
	}{
		{"system", opts.SystemFile, false},
		{"user", opts.UserFile, false},
		{"project", opts.ProjectFile, opts.ProjectFileRequired},
	}
	for _, layer := range layers {
		if layer.path == "" {
			continue
		}
		if _, err := os.Stat(layer.path); err != nil {
			if os.IsNotExist(err) && !layer.required {
				logger.Trace().Str("layer", layer.name).Str("path", layer.path).Msg("Config file not present")
				continue
			}
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load %s config from %s", layer.name, layer.path).
				WithDetail("path", layer.path)
		}
		if err := k.Load(file.Provider(layer.path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s config from %s", layer.name, layer.path).
				WithDetail("path", layer.path)
		}
		cfg.sources = append(cfg.sources, layer.path)
		logger.Debug().Str("layer", layer.name).Str("path", layer.path).Msg("Loaded config file")
	}

	// 5. Load env vars
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
		cfg.sources = append(cfg.sources, "env")
	}

	return cfg, nil
}

// envKey maps SCHEMER_ADD_CHANGE__WITH_TEST to add-change.with_test. A
// double underscore separates the section from the key and each further
// level, so SCHEMER_ADD_CHANGE__VARIABLES__SCHEMA is add-change.variables.schema.
// Underscores inside the section become dashes since section names are dashed.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, found := strings.Cut(s, "__")
	if !found {
		return s
	}
	return strings.ReplaceAll(section, "_", "-") + "." + strings.ReplaceAll(key, "__", ".")
}
