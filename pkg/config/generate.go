package config

import (
	"bytes"

	"github.com/arthur-debert/schemer/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# schemer configuration
#
# Place this file at ./schemer.toml for a project, at
# $XDG_CONFIG_HOME/schemer/config.toml for your user, or at
# /etc/xdg/schemer/schemer.toml for the whole system.
# Commented keys show example values.

`

// SampleFile returns a File populated with the built-in defaults and example
// values for optional keys.
func SampleFile() File {
	enabled := true
	return File{
		Core: Core{
			Project:   "my-project",
			TopDir:    ".",
			PlanFile:  "schemer.plan",
			Extension: "sql",
			DeployDir: "deploy",
			RevertDir: "revert",
			TestDir:   "test",
		},
		User: User{
			Name:  "Jane Doe",
			Email: "jane@example.com",
		},
		AddChange: AddChange{
			TemplateDirectory: "etc/templates",
			WithDeploy:        &enabled,
			WithRevert:        &enabled,
			WithTest:          &enabled,
			DeployTemplate:    "etc/templates/deploy.tmpl",
			RevertTemplate:    "etc/templates/revert.tmpl",
			TestTemplate:      "etc/templates/test.tmpl",
			Variables: map[string]interface{}{
				"schema": "app",
			},
		},
	}
}

// GenerateConfigContent renders the sample configuration as commented TOML
func GenerateConfigContent() (string, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(SampleFile()); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode sample configuration")
	}
	return buf.String(), nil
}
