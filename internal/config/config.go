// Package config loads gh-chrono settings and named templates from a TOML or
// YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrUnknownTemplate is returned when a named template is not defined.
var ErrUnknownTemplate = errors.New("unknown template")

const (
	appName         = "gh-chrono"
	defaultFileName = "config.toml"

	// DefaultTemplateName is used when neither flags nor the config file
	// select a template.
	DefaultTemplateName = "clock"
	// DefaultJobs bounds concurrent API requests.
	DefaultJobs = 10
)

// Format identifies a config file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String is used by fmt and in error messages.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// builtinTemplates are always available and may be overridden by name.
var builtinTemplates = map[string]string{
	"clock":   "%00h%:%00m%:%00s%",
	"compact": "%*0y%%*0mo%%*0w%%*0d%%*0h%%*0m%%*0s%",
	"long":    "%*0 years% %*0 months% %*0 days% %0 hours% %0 minutes% %0 seconds%",
}

// Config holds user settings. The zero value is not useful; use Default or
// Load.
type Config struct {
	DefaultTemplate string            `toml:"default_template" yaml:"default_template"`
	Color           string            `toml:"color" yaml:"color"`
	Jobs            int               `toml:"jobs" yaml:"jobs"`
	Templates       map[string]string `toml:"templates" yaml:"templates"`

	path string
}

// Default returns the built-in configuration.
func Default() *Config {
	templates := make(map[string]string, len(builtinTemplates))
	for name, pattern := range builtinTemplates {
		templates[name] = pattern
	}
	return &Config{
		DefaultTemplate: DefaultTemplateName,
		Color:           "auto",
		Jobs:            DefaultJobs,
		Templates:       templates,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, appName, defaultFileName), nil
}

// DetectFormat chooses an encoding from the file extension. Anything other
// than .yaml or .yml is read as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads the config file at path from fs and merges it over the
// defaults. A missing file is only an error when required is true, which
// callers use for paths given explicitly by the user.
func Load(fs afero.Fs, path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var file Config
	switch DetectFormat(path) {
	case FormatYAML:
		err = yaml.Unmarshal(data, &file)
	default:
		err = toml.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.merge(&file)
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// merge copies the values that are set in other.
func (c *Config) merge(other *Config) {
	if other.DefaultTemplate != "" {
		c.DefaultTemplate = other.DefaultTemplate
	}
	if other.Color != "" {
		c.Color = other.Color
	}
	if other.Jobs != 0 {
		c.Jobs = other.Jobs
	}
	for name, pattern := range other.Templates {
		c.Templates[name] = pattern
	}
}

// Validate checks the values that cannot be checked by decoding alone.
func (c *Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be one of \"auto\", \"always\", or \"never\", got %q", c.Color)
	}
	if c.Jobs < 1 || c.Jobs > 100 {
		return fmt.Errorf("jobs must be between 1 and 100, got %d", c.Jobs)
	}
	if _, err := c.Template(c.DefaultTemplate); err != nil {
		return fmt.Errorf("default_template: %w", err)
	}
	return nil
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// Template returns the pattern for a named template.
func (c *Config) Template(name string) (string, error) {
	pattern, ok := c.Templates[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownTemplate, name)
	}
	return pattern, nil
}

// TemplateNames returns the defined template names in sorted order.
func (c *Config) TemplateNames() []string {
	names := make([]string, 0, len(c.Templates))
	for name := range c.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReadTemplateFile reads a template from a file, trimming the trailing
// newline that editors add.
func ReadTemplateFile(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read template file: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
