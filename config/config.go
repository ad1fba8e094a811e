package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/hyprdispatch/errors"
	"github.com/grovetools/hyprdispatch/pkg/paths"
	"github.com/grovetools/hyprdispatch/schema"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the syntax from the file extension. Anything that is
// not .toml is read as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.ConfigInvalid(path, err)
	}

	cfg, err := LoadFromBytes(data, FormatForPath(path))
	if err != nil {
		return nil, errors.ConfigInvalid(path, err)
	}
	return cfg, nil
}

// LoadDefault loads the configuration from its default location:
// 1. $HYPRDISPATCH_CONFIG, which must exist when set
// 2. the first existing file among paths.ConfigCandidates
// A missing default file is not an error; Default() is returned with an
// empty path.
func LoadDefault(env Environment, logger *logrus.Entry) (*Config, string, error) {
	if explicit := env.Get(EnvConfigFile); explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}

	for _, candidate := range paths.ConfigCandidates(env.LookupFunc()) {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		logger.WithField("path", candidate).Debug("Loading configuration")
		cfg, err := Load(candidate)
		return cfg, candidate, err
	}

	logger.Debug("No configuration file found, using defaults")
	return Default(), "", nil
}

// LoadFromBytes parses, validates and decodes a configuration document.
func LoadFromBytes(data []byte, format Format) (*Config, error) {
	raw := make(map[string]interface{})
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	}

	if err := validate(raw); err != nil {
		return nil, err
	}

	cfg, err := decode(raw)
	if err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	return cfg, nil
}

func validate(raw map[string]interface{}) error {
	schemaData, err := GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	v, err := schema.NewValidator(schemaData)
	if err != nil {
		return err
	}
	return v.Validate(raw)
}

func decode(raw map[string]interface{}) (*Config, error) {
	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &cfg,
		TagName: "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
