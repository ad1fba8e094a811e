package logging

import (
	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of the "logging" configuration section.
// Nested types are inlined so the result can be embedded in another
// document.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		DoNotReference:            true,
		Anonymous:                 true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&Config{})
	schema.Version = ""
	schema.Title = "Logging"
	schema.Description = "The 'logging' section of the hyprdispatch configuration."
	schema.Required = nil
	return schema
}
