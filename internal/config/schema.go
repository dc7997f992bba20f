package config

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

var (
	catalogSchemaOnce sync.Once
	catalogSchema     *jsonschema.Resolved
	catalogSchemaErr  error
)

// CatalogSchema returns the JSON Schema a server catalog document must satisfy.
func CatalogSchema() *jsonschema.Schema {
	one := 1

	server := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name": {Type: "string", MinLength: &one, Pattern: `^[^/\\]+$`},
			"command": {
				Type:     "array",
				MinItems: &one,
				Items:    &jsonschema.Schema{Type: "string"},
			},
			"env": {
				Type:                 "object",
				AdditionalProperties: &jsonschema.Schema{Type: "string"},
			},
			"enabled": {Type: "boolean"},
		},
		Required:             []string{"name", "command"},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}

	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"servers": {
				Type:  "array",
				Items: server,
			},
		},
		Required: []string{"servers"},
	}
}

// validateCatalogDocument validates a decoded YAML document against CatalogSchema.
//
// The document is round-tripped through JSON first so the validator only sees
// JSON value types (float64, map[string]any, []any).
func validateCatalogDocument(doc any) error {
	catalogSchemaOnce.Do(func() {
		catalogSchema, catalogSchemaErr = CatalogSchema().Resolve(nil)
	})

	if catalogSchemaErr != nil {
		return fmt.Errorf("resolve catalog schema: %w", catalogSchemaErr)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("decode catalog: %w", err)
	}

	if err := catalogSchema.Validate(instance); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	return nil
}
