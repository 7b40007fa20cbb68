package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/schemer/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(LoadOptions{SkipEnv: true})
	require.NoError(t, err)

	assert.Equal(t, "sql", cfg.String("core.extension"))
	assert.Equal(t, "schemer.plan", cfg.String("core.plan_file"))
	assert.Equal(t, []string{"defaults"}, cfg.Sources())

	_, set := cfg.Bool(WithKey("deploy"))
	assert.False(t, set, "with_deploy should not be set by defaults")
}

func TestLoadLayering(t *testing.T) {
	dir := t.TempDir()
	system := writeFile(t, filepath.Join(dir, "system", "schemer.toml"), `
[core]
extension = "pgsql"

[add-change]
template_directory = "/system/templates"
with_test = false

[add-change.variables]
owner = "system"
schema = "public"
`)
	user := writeFile(t, filepath.Join(dir, "user", "config.toml"), `
[add-change]
template_directory = "/user/templates"

[add-change.variables]
owner = "user"
`)
	project := writeFile(t, filepath.Join(dir, "project", "schemer.toml"), `
[add-change]
with_test = true
deploy_template = "etc/deploy.tmpl"
`)

	cfg, err := Load(LoadOptions{
		SystemFile:  system,
		UserFile:    user,
		ProjectFile: project,
		UserDir:     filepath.Join(dir, "user"),
		SystemDir:   filepath.Join(dir, "system"),
		SkipEnv:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, "pgsql", cfg.String("core.extension"))
	assert.Equal(t, "/user/templates", cfg.String(KeyTemplateDirectory))
	assert.Equal(t, "etc/deploy.tmpl", cfg.String(TemplateKey("deploy")))

	withTest, set := cfg.Bool(WithKey("test"))
	assert.True(t, set)
	assert.True(t, withTest, "project layer should override system layer")

	vars := cfg.Section(KeyVariables)
	assert.Equal(t, "user", vars["owner"])
	assert.Equal(t, "public", vars["schema"], "tables merge key by key across layers")

	assert.Equal(t, filepath.Join(dir, "user"), cfg.UserDir())
	assert.Equal(t, filepath.Join(dir, "system"), cfg.SystemDir())
	assert.Equal(t, []string{"defaults", system, user, project}, cfg.Sources())
}

func TestLoadMissingFiles(t *testing.T) {
	dir := t.TempDir()

	t.Run("optional files are skipped", func(t *testing.T) {
		cfg, err := Load(LoadOptions{
			SystemFile:  filepath.Join(dir, "nope", "schemer.toml"),
			UserFile:    filepath.Join(dir, "nope", "config.toml"),
			ProjectFile: filepath.Join(dir, "schemer.toml"),
			SkipEnv:     true,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"defaults"}, cfg.Sources())
	})

	t.Run("required project file", func(t *testing.T) {
		_, err := Load(LoadOptions{
			ProjectFile:         filepath.Join(dir, "explicit.toml"),
			ProjectFileRequired: true,
			SkipEnv:             true,
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("invalid toml", func(t *testing.T) {
		bad := writeFile(t, filepath.Join(dir, "bad.toml"), "[add-change\nwith_test = ")
		_, err := Load(LoadOptions{ProjectFile: bad, SkipEnv: true})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SCHEMER_ADD_CHANGE__WITH_REVERT", "false")
	t.Setenv("SCHEMER_CORE__EXTENSION", "ddl")
	t.Setenv("SCHEMER_USER__NAME", "Env User")
	t.Setenv("SCHEMER_ADD_CHANGE__VARIABLES__OWNER_ROLE", "admin")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	withRevert, set := cfg.Bool(WithKey("revert"))
	assert.True(t, set)
	assert.False(t, withRevert)
	assert.Equal(t, "ddl", cfg.String("core.extension"))
	assert.Equal(t, "Env User", cfg.String(KeyUserName))
	assert.Equal(t, "admin", cfg.Section(KeyVariables)["owner_role"])
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"SCHEMER_ADD_CHANGE__WITH_TEST":           "add-change.with_test",
		"SCHEMER_ADD_CHANGE__TEMPLATE_DIRECTORY":  "add-change.template_directory",
		"SCHEMER_CORE__TOP_DIR":                   "core.top_dir",
		"SCHEMER_ADD_CHANGE__VARIABLES__SCHEMA":   "add-change.variables.schema",
		"SCHEMER_ADD_CHANGE__VARIABLES__DB__HOST": "add-change.variables.db.host",
		"SCHEMER_VERBOSE":                         "verbose",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}

func TestReaderAccessors(t *testing.T) {
	cfg, err := NewFromMap(map[string]interface{}{
		"add-change.with_deploy":  true,
		"add-change.with_revert":  "no",
		"add-change.with_test":    "0",
		"add-change.count":        int64(3),
		"add-change.list":         []interface{}{"a", "b"},
		"add-change.single":       "only",
		"add-change.variables.db": "pg",
	}, "/u", "/s")
	require.NoError(t, err)

	v, set := cfg.Bool("add-change.with_deploy")
	assert.True(t, v)
	assert.True(t, set)

	_, set = cfg.Bool("add-change.with_revert")
	assert.False(t, set, "unparsable booleans count as unset")

	v, set = cfg.Bool("add-change.with_test")
	assert.False(t, v)
	assert.True(t, set)

	_, set = cfg.Bool("add-change.missing")
	assert.False(t, set)

	assert.Equal(t, "3", cfg.String("add-change.count"))
	assert.Equal(t, "", cfg.String("add-change.variables"), "tables are not scalars")
	assert.Equal(t, "", cfg.String("nope"))

	assert.Equal(t, []string{"a", "b"}, cfg.Strings("add-change.list"))
	assert.Equal(t, []string{"only"}, cfg.Strings("add-change.single"))
	assert.Nil(t, cfg.Strings("nope"))

	assert.Equal(t, map[string]interface{}{"db": "pg"}, cfg.Section(KeyVariables))
	assert.Empty(t, cfg.Section("add-change.single"))
	assert.Empty(t, cfg.Section("nope"))

	assert.True(t, cfg.Exists("add-change.count"))
	assert.Equal(t, "/u", cfg.UserDir())
	assert.Equal(t, "/s", cfg.SystemDir())
}

func TestUnmarshal(t *testing.T) {
	t.Setenv("SCHEMER_ADD_CHANGE__WITH_TEST", "false")
	dir := t.TempDir()
	project := writeFile(t, filepath.Join(dir, "schemer.toml"), `
[core]
project = "flipr"

[user]
name = "Marge"
email = "marge@example.com"

[add-change]
revert_template = "r.tmpl"

[add-change.variables]
schema = "app"
`)

	cfg, err := Load(LoadOptions{ProjectFile: project})
	require.NoError(t, err)

	file, err := cfg.Unmarshal()
	require.NoError(t, err)

	assert.Equal(t, "flipr", file.Core.Project)
	assert.Equal(t, "sql", file.Core.Extension)
	assert.Equal(t, "deploy", file.Core.DeployDir)
	assert.Equal(t, "Marge", file.User.Name)
	assert.Equal(t, "r.tmpl", file.AddChange.RevertTemplate)
	assert.Nil(t, file.AddChange.WithDeploy)
	require.NotNil(t, file.AddChange.WithTest)
	assert.False(t, *file.AddChange.WithTest)
	assert.Equal(t, "app", file.AddChange.Variables["schema"])
}

func TestGenerateConfigContent(t *testing.T) {
	content, err := GenerateConfigContent()
	require.NoError(t, err)

	assert.Contains(t, content, "# schemer configuration")
	assert.Contains(t, content, "[add-change]")
	assert.Contains(t, content, "template_directory")

	var parsed File
	require.NoError(t, toml.Unmarshal([]byte(content), &parsed))
	assert.Equal(t, ".", parsed.Core.TopDir)
	assert.Equal(t, "sql", parsed.Core.Extension)
	assert.Empty(t, parsed.Core.Project, "example-only keys are commented out")
	assert.Empty(t, parsed.AddChange.TemplateDirectory)
}

func TestOverride(t *testing.T) {
	cfg, err := Load(LoadOptions{SkipEnv: true})
	require.NoError(t, err)

	require.NoError(t, cfg.Override(nil))
	assert.Equal(t, []string{"defaults"}, cfg.Sources())

	require.NoError(t, cfg.Override(map[string]interface{}{KeyTopDir: "db"}))
	assert.Equal(t, "db", cfg.String(KeyTopDir))
	assert.Equal(t, "sql", cfg.String(KeyExtension), "other keys keep their values")
	assert.Equal(t, []string{"defaults", "flags"}, cfg.Sources())
}
