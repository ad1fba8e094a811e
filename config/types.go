package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DefaultControlTool is the Hyprland control executable.
const DefaultControlTool = "hyprctl"

// Config is the hyprdispatch configuration file.
type Config struct {
	// ControlTool is the name or path of the compositor control executable.
	ControlTool string `yaml:"control_tool,omitempty" toml:"control_tool,omitempty" mapstructure:"control_tool"`

	// Extensions holds every other top-level section, e.g. "logging".
	Extensions map[string]interface{} `yaml:"-" toml:"-" mapstructure:",remain"`
}

// Default returns a configuration with default values.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills in unset values.
func (c *Config) SetDefaults() {
	if c.ControlTool == "" {
		c.ControlTool = DefaultControlTool
	}
	if c.Extensions == nil {
		c.Extensions = make(map[string]interface{})
	}
}

// UnmarshalExtension decodes a specific extension's configuration into the
// provided target struct. The target must be a pointer. A missing section
// leaves the target unchanged.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	// Extension structs are tagged for YAML; reuse those names.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
