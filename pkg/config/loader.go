package config

import (
	"fmt"

	"github.com/macropower/listcomp/pkg/yaml"
)

type ConfigValidator interface {
	Validate(data any) error
}

// ConfigLoader validates and decodes configuration data.
type ConfigLoader struct {
	cv        ConfigValidator
	yamlError *yaml.ErrorWrapper
	data      []byte
}

type ConfigLoaderOpt func(*ConfigLoader)

func WithConfigValidator(cv ConfigValidator) ConfigLoaderOpt {
	return func(cl *ConfigLoader) {
		cl.cv = cv
	}
}

func NewConfigLoaderFromBytes(data []byte, opts ...ConfigLoaderOpt) *ConfigLoader {
	cl := &ConfigLoader{
		cv:   DefaultValidator,
		data: data,
	}
	for _, opt := range opts {
		opt(cl)
	}

	cl.yamlError = yaml.NewErrorWrapper(yaml.WithSource(cl.data))

	return cl
}

func NewConfigLoaderFromFile(path string, opts ...ConfigLoaderOpt) (*ConfigLoader, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return NewConfigLoaderFromBytes(data, opts...), nil
}

// Validate validates configuration data with the [ConfigValidator] without
// loading it into a [Config].
func (cl *ConfigLoader) Validate() error {
	anyConfig := any(map[string]any{})

	err := yaml.Unmarshal(cl.data, &anyConfig)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, cl.yamlError.Wrap(err))
	}

	if cl.cv == nil {
		return nil
	}

	err = cl.cv.Validate(anyConfig)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, cl.yamlError.Wrap(err))
	}

	return nil
}

// Load decodes the data into a [Config], fills in defaults, and checks the
// resulting values.
func (cl *ConfigLoader) Load() (*Config, error) {
	c := &Config{}

	err := yaml.Unmarshal(cl.data, c, yaml.WithStrict())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, cl.yamlError.Wrap(err))
	}

	c.EnsureDefaults()

	err = c.Validate()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, cl.yamlError.Wrap(err))
	}

	return c, nil
}
