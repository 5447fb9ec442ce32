package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "embed"

	"github.com/macropower/listcomp/pkg/listio"
	"github.com/macropower/listcomp/pkg/log"
	"github.com/macropower/listcomp/pkg/yaml"
)

const (
	APIVersion = "listcomp.macropower.dev/v1"
	Kind       = "Configuration"

	schemaURL = "https://raw.githubusercontent.com/macropower/listcomp/refs/heads/main/pkg/config/config.v1.json"
)

var (
	//go:embed config.yaml
	defaultConfigYAML []byte

	ErrInvalidConfig = errors.New("invalid config")

	// DefaultValidator validates configuration against the schema reflected
	// from [Config].
	DefaultValidator = yaml.MustNewValidatorFor(schemaURL, &Config{})
)

type Config struct {
	// APIVersion specifies the API version for this configuration.
	APIVersion string `json:"apiVersion" jsonschema:"title=API Version,enum=listcomp.macropower.dev/v1"`
	// Kind defines the type of configuration.
	Kind string `json:"kind" jsonschema:"title=Kind,enum=Configuration"`
	// Log configures diagnostic output on stderr.
	Log *LogConfig `json:"log,omitempty" jsonschema:"title=Log"`
	// IO configures the default item formats.
	IO *IOConfig `json:"io,omitempty" jsonschema:"title=IO"`
}

type LogConfig struct {
	Level  string `json:"level,omitempty"  jsonschema:"title=Level,enum=error,enum=warn,enum=warning,enum=info,enum=debug"`
	Format string `json:"format,omitempty" jsonschema:"title=Format,enum=text,enum=logfmt,enum=json"`
}

type IOConfig struct {
	Input  string `json:"input,omitempty"  jsonschema:"title=Input Format,enum=text,enum=json,enum=yaml"`
	Output string `json:"output,omitempty" jsonschema:"title=Output Format,enum=text,enum=json,enum=yaml"`
}

// NewConfig creates a new [Config] with default values.
func NewConfig() *Config {
	c := &Config{
		APIVersion: APIVersion,
		Kind:       Kind,
	}
	c.EnsureDefaults()

	return c
}

// EnsureDefaults initializes empty fields to their default values.
func (c *Config) EnsureDefaults() {
	if c.Log == nil {
		c.Log = &LogConfig{}
	}
	if c.Log.Level == "" {
		c.Log.Level = string(log.LevelInfo)
	}
	if c.Log.Format == "" {
		c.Log.Format = string(log.FormatText)
	}

	if c.IO == nil {
		c.IO = &IOConfig{}
	}
	if c.IO.Input == "" {
		c.IO.Input = string(listio.FormatText)
	}
	if c.IO.Output == "" {
		c.IO.Output = string(listio.FormatText)
	}
}

// Validate checks values the schema cannot express on its own, by parsing
// them the same way the CLI will.
func (c *Config) Validate() error {
	pb := yaml.NewPathBuilder

	if _, err := log.GetLevel(c.Log.Level); err != nil {
		return yaml.NewError(err, yaml.WithPath(pb().Root().Child("log").Child("level").Build()))
	}
	if _, err := log.GetFormat(c.Log.Format); err != nil {
		return yaml.NewError(err, yaml.WithPath(pb().Root().Child("log").Child("format").Build()))
	}
	if _, err := listio.GetFormat(c.IO.Input); err != nil {
		return yaml.NewError(err, yaml.WithPath(pb().Root().Child("io").Child("input").Build()))
	}
	if _, err := listio.GetFormat(c.IO.Output); err != nil {
		return yaml.NewError(err, yaml.WithPath(pb().Root().Child("io").Child("output").Build()))
	}

	return nil
}

// MarshalYAML serializes the config to YAML.
func (c *Config) MarshalYAML() ([]byte, error) {
	type alias Config

	return yaml.Marshal((*alias)(c)) //nolint:wrapcheck // Already wrapped.
}

// GetPath returns the default config file location: $XDG_CONFIG_HOME, then
// ~/.config, then the temp directory.
func GetPath() string {
	if xdgHome, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && xdgHome != "" {
		return filepath.Join(xdgHome, "listcomp", "config.yaml")
	}

	usrHome, err := os.UserHomeDir()
	if err == nil && usrHome != "" {
		return filepath.Join(usrHome, ".config", "listcomp", "config.yaml")
	}

	tmpConfig := filepath.Join(os.TempDir(), "listcomp", "config.yaml")

	slog.Warn("could not determine user config directory, using temp path for config",
		slog.String("path", tmpConfig),
		slog.Any("error", fmt.Errorf("$XDG_CONFIG_HOME is unset, fall back to home directory: %w", err)),
	)

	return tmpConfig
}
