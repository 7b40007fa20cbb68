package config

import (
	"github.com/arthur-debert/schemer/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/v2"
)

// File is the typed shape of a schemer configuration file
type File struct {
	Core      Core      `koanf:"core" toml:"core" comment:"Project layout"`
	User      User      `koanf:"user" toml:"user" comment:"Planner identity recorded in the plan"`
	AddChange AddChange `koanf:"add-change" toml:"add-change" comment:"Defaults for 'schemer add'"`
}

// Core holds project layout settings
type Core struct {
	Project   string `koanf:"project" toml:"project,commented" comment:"Project name written to new plan files (default: directory name)"`
	TopDir    string `koanf:"top_dir" toml:"top_dir" comment:"Directory holding the plan and script directories"`
	PlanFile  string `koanf:"plan_file" toml:"plan_file" comment:"Plan file, relative to top_dir"`
	Extension string `koanf:"extension" toml:"extension" comment:"Script file extension"`
	DeployDir string `koanf:"deploy_dir" toml:"deploy_dir" comment:"Deploy scripts directory, relative to top_dir"`
	RevertDir string `koanf:"revert_dir" toml:"revert_dir" comment:"Revert scripts directory, relative to top_dir"`
	TestDir   string `koanf:"test_dir" toml:"test_dir" comment:"Test scripts directory, relative to top_dir"`
}

// User identifies the planner
type User struct {
	Name  string `koanf:"name" toml:"name,commented"`
	Email string `koanf:"email" toml:"email,commented"`
}

// AddChange mirrors the [add-change] table
type AddChange struct {
	TemplateDirectory string                 `koanf:"template_directory" toml:"template_directory,commented" comment:"Searched before the user and system template directories"`
	WithDeploy        *bool                  `koanf:"with_deploy" toml:"with_deploy,commented" comment:"Set to false to skip generating a script kind"`
	WithRevert        *bool                  `koanf:"with_revert" toml:"with_revert,commented"`
	WithTest          *bool                  `koanf:"with_test" toml:"with_test,commented"`
	DeployTemplate    string                 `koanf:"deploy_template" toml:"deploy_template,commented" comment:"Explicit template files, bypassing the directory search"`
	RevertTemplate    string                 `koanf:"revert_template" toml:"revert_template,commented"`
	TestTemplate      string                 `koanf:"test_template" toml:"test_template,commented"`
	Variables         map[string]interface{} `koanf:"variables" toml:"variables,commented" comment:"Variables available to every template; --set overrides them"`
}

// Unmarshal decodes the loaded layers into a File. Values set through the
// environment arrive as strings and are weakly converted.
func (c *Config) Unmarshal() (*File, error) {
	var out File
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &out,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := c.k.UnmarshalWithConf("", &out, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &out, nil
}
