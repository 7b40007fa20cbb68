package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		projectDir string
		envSetup   map[string]string
		validate   func(t *testing.T, p *Paths)
	}{
		{
			name:       "explicit project dir",
			projectDir: "/tmp/project",
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/tmp/project", p.ProjectDir())
				assert.Equal(t, "/tmp/project/schemer.toml", p.ProjectConfigPath())
			},
		},
		{
			name: "empty project dir uses cwd",
			validate: func(t *testing.T, p *Paths) {
				cwd, err := os.Getwd()
				require.NoError(t, err)
				assert.Equal(t, cwd, p.ProjectDir())
			},
		},
		{
			name:       "expand tilde in project dir",
			projectDir: "~/db",
			validate: func(t *testing.T, p *Paths) {
				homeDir, _ := os.UserHomeDir()
				assert.Equal(t, filepath.Join(homeDir, "db"), p.ProjectDir())
			},
		},
		{
			name:       "env overrides",
			projectDir: "/tmp/project",
			envSetup: map[string]string{
				EnvConfigDir: "/custom/user",
				EnvSystemDir: "/custom/system",
				EnvStateDir:  "/custom/state",
			},
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/custom/user", p.UserDir())
				assert.Equal(t, "/custom/user/config.toml", p.UserConfigPath())
				assert.Equal(t, "/custom/system", p.SystemDir())
				assert.Equal(t, "/custom/system/schemer.toml", p.SystemConfigPath())
				assert.Equal(t, "/custom/state/schemer.log", p.LogFilePath())
				assert.Equal(t, "/custom/state/locks", p.LocksDirPath())
			},
		},
		{
			name:       "default roots end in app dir",
			projectDir: "/tmp/project",
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, AppDirName, filepath.Base(p.UserDir()))
				assert.Equal(t, AppDirName, filepath.Base(p.StateDir()))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{EnvConfigDir, EnvSystemDir, EnvStateDir} {
				t.Setenv(key, "")
			}
			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}

			p, err := New(tt.projectDir)
			require.NoError(t, err)
			tt.validate(t, p)
		})
	}
}

func TestTemplatesDirFor(t *testing.T) {
	assert.Equal(t, "", TemplatesDirFor(""))
	assert.Equal(t, "/etc/schemer/templates", TemplatesDirFor("/etc/schemer"))
}

func TestSystemConfigPathEmptyRoot(t *testing.T) {
	p := &Paths{}
	assert.Equal(t, "", p.SystemConfigPath())
}
