package genconfig

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/schemer/pkg/config"
	"github.com/arthur-debert/schemer/pkg/filesystem"
	"github.com/arthur-debert/schemer/pkg/templates"
	"github.com/arthur-debert/schemer/pkg/testutil"
	"github.com/arthur-debert/schemer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfigStdout(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	result, err := GenConfig(GenConfigOptions{FileSystem: env.FS, Path: "/project/schemer.toml"})
	require.NoError(t, err)

	assert.Contains(t, result.ConfigContent, "[add-change]")
	assert.Empty(t, result.FilesWritten)
	assert.False(t, env.Exists("/project/schemer.toml"))
}

func TestGenConfigWrite(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	opts := GenConfigOptions{Write: true, FileSystem: env.FS, Path: "/project/schemer.toml"}

	result, err := GenConfig(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"/project/schemer.toml"}, result.FilesWritten)
	assert.Equal(t, result.ConfigContent, env.ReadFile("/project/schemer.toml"))

	env.WriteFile("/project/schemer.toml", "# mine\n")
	result, err = GenConfig(opts)
	require.NoError(t, err)
	assert.Empty(t, result.FilesWritten)
	assert.Equal(t, []string{"/project/schemer.toml"}, result.FilesSkipped)
	assert.Equal(t, "# mine\n", env.ReadFile("/project/schemer.toml"))
}

func TestGeneratedConfigKeepsExamplesInactive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schemer.toml")

	_, err := GenConfig(GenConfigOptions{Write: true, FileSystem: filesystem.NewOS(), Path: path})
	require.NoError(t, err)

	cfg, err := config.Load(config.LoadOptions{
		ProjectFile: path,
		UserDir:     filepath.Join(dir, "user"),
		SystemDir:   filepath.Join(dir, "system"),
		SkipEnv:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"defaults", path}, cfg.Sources())

	resolver := templates.NewResolver(filesystem.NewOS(), cfg, templates.ResolverOptions{})
	for _, kind := range types.ScriptKinds {
		assert.Empty(t, resolver.Override(kind), kind.String())
		_, set := cfg.Bool(config.WithKey(kind.String()))
		assert.False(t, set, kind.String())
	}
	assert.Equal(t, filepath.Join(dir, "user", "templates"), resolver.Chain()[1])
	assert.Empty(t, resolver.Chain()[0], "template_directory stays commented out")

	assert.Empty(t, cfg.String(config.KeyUserName))
	assert.Empty(t, cfg.String(config.KeyUserEmail))
	assert.Empty(t, cfg.String(config.KeyProject))
	assert.Empty(t, cfg.Section(config.KeyVariables))
	assert.Equal(t, ".", cfg.String(config.KeyTopDir))
	assert.Equal(t, "sql", cfg.String(config.KeyExtension))
}
