// Command schema-generator writes the JSON Schemas of the configuration
// file and of its logging section.
package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/grovetools/hyprdispatch/config"
	"github.com/grovetools/hyprdispatch/logging"
	"github.com/spf13/pflag"
)

func main() {
	outputDir := pflag.StringP("out", "o", "schema/definitions", "Output directory")
	pflag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("Error creating schema directory: %v", err)
	}

	configSchema, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}
	write(filepath.Join(*outputDir, "hyprdispatch.schema.json"), configSchema)

	loggingSchema, err := json.MarshalIndent(logging.Schema(), "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling logging schema: %v", err)
	}
	write(filepath.Join(*outputDir, "logging.schema.json"), loggingSchema)
}

func write(path string, data []byte) {
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}
	log.Printf("Wrote %s", path)
}
