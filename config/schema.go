package config

import (
	"encoding/json"

	"github.com/grovetools/hyprdispatch/logging"
	"github.com/invopop/jsonschema"
)

//go:generate go run ../tools/schema-generator -o ../schema/definitions

// GenerateSchema generates the JSON Schema for the configuration file.
// Extension sections are allowed as additional properties; the logging
// section is described inline.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	type BaseConfig struct {
		ControlTool string `yaml:"control_tool,omitempty" jsonschema:"minLength=1,description=Name or path of the compositor control executable (default: hyprctl)"`
	}

	schema := r.Reflect(&BaseConfig{})
	schema.Title = "hyprdispatch configuration"
	schema.Description = "Configuration file for the hyprdispatch command."
	schema.Version = "http://json-schema.org/draft-07/schema#"
	schema.Properties.Set("logging", logging.Schema())

	return json.MarshalIndent(schema, "", "  ")
}
