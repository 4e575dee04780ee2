// Package config loads, validates and watches the splitgrid configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema of Config, indented.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:               "toml",
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/splitgrid/config.schema.json"
	schema.Title = "splitgrid configuration"
	schema.Description = "Configuration schema for splitgrid, a split-pane terminal workspace"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes the schema next to the config file and returns
// its path.
func GenerateSchemaFile() (string, error) {
	schemaFile, err := GetSchemaFile()
	if err != nil {
		return "", fmt.Errorf("failed to get schema path: %w", err)
	}

	data, err := GenerateSchema()
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
