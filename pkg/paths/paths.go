package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/schemer/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the user-level root (XDG config directory)
	EnvConfigDir = "SCHEMER_CONFIG_DIR"

	// EnvSystemDir overrides the system-level root
	EnvSystemDir = "SCHEMER_SYSTEM_DIR"

	// EnvStateDir overrides the XDG state directory used for logs
	EnvStateDir = "SCHEMER_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for schemer-specific files
	AppDirName = "schemer"

	// TemplatesDir is the subdirectory of a root that holds script templates
	TemplatesDir = "templates"

	// UserConfigFile is the configuration file name inside the user root
	UserConfigFile = "config.toml"

	// SystemConfigFile is the configuration file name inside the system root
	SystemConfigFile = "schemer.toml"

	// ProjectConfigFile is the configuration file name in a project directory
	ProjectConfigFile = "schemer.toml"

	// LogFileName is the name of the log file
	LogFileName = "schemer.log"

	// LocksDir is the subdirectory of the state dir holding plan locks
	LocksDir = "locks"
)

// Paths resolves every location schemer reads from or writes to outside of
// the project tree.
type Paths struct {
	projectDir string
	userDir    string
	systemDir  string
	stateDir   string
}

// New creates a Paths instance rooted at projectDir. An empty projectDir means
// the current working directory.
func New(projectDir string) (*Paths, error) {
	if projectDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to determine working directory")
		}
		projectDir = cwd
	}

	absRoot, err := filepath.Abs(expandHome(projectDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", projectDir)
	}

	return &Paths{
		projectDir: absRoot,
		userDir:    userDir(),
		systemDir:  systemDir(),
		stateDir:   stateDir(),
	}, nil
}

// ProjectDir returns the absolute project directory
func (p *Paths) ProjectDir() string {
	return p.projectDir
}

// ProjectConfigPath returns the path of the project-level configuration file
func (p *Paths) ProjectConfigPath() string {
	return filepath.Join(p.projectDir, ProjectConfigFile)
}

// UserDir returns the user-level root
func (p *Paths) UserDir() string {
	return p.userDir
}

// UserConfigPath returns the path of the user-level configuration file
func (p *Paths) UserConfigPath() string {
	return filepath.Join(p.userDir, UserConfigFile)
}

// SystemDir returns the system-level root, or "" when none can be determined
func (p *Paths) SystemDir() string {
	return p.systemDir
}

// SystemConfigPath returns the path of the system-level configuration file
func (p *Paths) SystemConfigPath() string {
	if p.systemDir == "" {
		return ""
	}
	return filepath.Join(p.systemDir, SystemConfigFile)
}

// StateDir returns the directory for runtime state such as logs
func (p *Paths) StateDir() string {
	return p.stateDir
}

// LocksDirPath returns the directory holding plan lock files
func (p *Paths) LocksDirPath() string {
	return filepath.Join(p.stateDir, LocksDir)
}

// LogFilePath returns the path of the log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// TemplatesDirFor returns the templates subdirectory of root, or "" for an
// empty root.
func TemplatesDirFor(root string) string {
	if root == "" {
		return ""
	}
	return filepath.Join(root, TemplatesDir)
}

// LogFilePath returns the log file location without requiring a project
// directory, for use before commands resolve their paths.
func LogFilePath() string {
	return filepath.Join(stateDir(), LogFileName)
}

func userDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

func systemDir() string {
	if dir := os.Getenv(EnvSystemDir); dir != "" {
		return expandHome(dir)
	}
	if len(xdg.ConfigDirs) == 0 {
		return ""
	}
	return filepath.Join(xdg.ConfigDirs[0], AppDirName)
}

func stateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}
	}

	return path
}
