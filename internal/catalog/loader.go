package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema validates user-supplied catalog files before they replace
// the built-in table.
var catalogSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"related_terms": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"course": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"exercise": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
		},
		"required":             []any{"name", "related_terms", "course", "exercise"},
		"additionalProperties": false,
	},
}

// Load reads a catalog from a JSON file, validates it against the catalog
// schema, and builds a Catalog preserving file order.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	compiled, err := compileCatalogSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode catalog entries: %w", err)
	}

	c, err := New(entries)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return c, nil
}

func compileCatalogSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	defBytes, err := json.Marshal(catalogSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse catalog schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://catalog.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	return compiled, nil
}
