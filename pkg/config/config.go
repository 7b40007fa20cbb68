package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// Configuration keys consumed by the add command
const (
	KeyVariables         = "add-change.variables"
	KeyTemplateDirectory = "add-change.template_directory"
	KeyUserName          = "user.name"
	KeyUserEmail         = "user.email"
)

// Project layout keys
const (
	KeyProject   = "core.project"
	KeyTopDir    = "core.top_dir"
	KeyPlanFile  = "core.plan_file"
	KeyExtension = "core.extension"
)

// DirKey returns the script directory key for a kind name, e.g.
// "core.deploy_dir".
func DirKey(kind string) string {
	return "core." + kind + "_dir"
}

// WithKey returns the enable/disable key for a script kind name, e.g.
// "add-change.with_deploy".
func WithKey(kind string) string {
	return "add-change.with_" + kind
}

// TemplateKey returns the explicit template override key for a script kind
// name, e.g. "add-change.deploy_template".
func TemplateKey(kind string) string {
	return "add-change." + kind + "_template"
}

// Reader is a read-only view of the layered configuration.
type Reader interface {
	// String returns the scalar at key, or "" when unset
	String(key string) string
	// Bool returns the boolean at key and whether the key was set at all
	Bool(key string) (value bool, set bool)
	// Strings returns the list at key; a scalar becomes a one-element list
	Strings(key string) []string
	// Section returns the table at key with nested values untouched
	Section(key string) map[string]interface{}
	// UserDir returns the user-level root directory
	UserDir() string
	// SystemDir returns the system-level root directory, "" if unknown
	SystemDir() string
}

// Config is the koanf-backed Reader implementation
type Config struct {
	k         *koanf.Koanf
	userDir   string
	systemDir string
	sources   []string
}

var _ Reader = (*Config)(nil)

// NewFromMap builds a Config from an already nested or dot-flattened map.
// It is used by tests and by callers that assemble configuration in memory.
func NewFromMap(values map[string]interface{}, userDir, systemDir string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load config map: %w", err)
	}
	return &Config{k: k, userDir: userDir, systemDir: systemDir, sources: []string{"map"}}, nil
}

// String implements Reader
func (c *Config) String(key string) string {
	v := c.k.Get(key)
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case map[string]interface{}:
		return ""
	default:
		return fmt.Sprint(val)
	}
}

// Bool implements Reader. Strings such as "false" or "0" coming from the
// environment are parsed; unparsable values count as unset.
func (c *Config) Bool(key string) (bool, bool) {
	v := c.k.Get(key)
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return false, false
		}
		return b, true
	case int64:
		return val != 0, true
	case int:
		return val != 0, true
	default:
		return false, false
	}
}

// Strings implements Reader
func (c *Config) Strings(key string) []string {
	v := c.k.Get(key)
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		return append([]string(nil), val...)
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	default:
		return []string{fmt.Sprint(val)}
	}
}

// Section implements Reader
func (c *Config) Section(key string) map[string]interface{} {
	if !c.k.Exists(key) {
		return map[string]interface{}{}
	}
	if _, ok := c.k.Get(key).(map[string]interface{}); !ok {
		return map[string]interface{}{}
	}
	return c.k.Cut(key).Raw()
}

// Exists reports whether key was set by any layer
func (c *Config) Exists(key string) bool {
	return c.k.Exists(key)
}

// UserDir implements Reader
func (c *Config) UserDir() string {
	return c.userDir
}

// SystemDir implements Reader
func (c *Config) SystemDir() string {
	return c.systemDir
}

// Sources lists the configuration layers that were loaded, lowest
// precedence first.
func (c *Config) Sources() []string {
	return append([]string(nil), c.sources...)
}

// Override layers values above every other source, the way command-line
// flags do. Keys may be dot-flattened.
func (c *Config) Override(values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}
	if err := c.k.Load(confmap.Provider(values, "."), nil); err != nil {
		return fmt.Errorf("failed to apply overrides: %w", err)
	}
	c.sources = append(c.sources, "flags")
	return nil
}
