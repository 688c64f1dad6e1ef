package problemgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON schema definition.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "math-problem".
	Name string

	// Definition is the JSON schema as a Go value.
	Definition map[string]any
}

var numberArray = map[string]any{"type": "array", "items": map[string]any{"type": "integer"}}

// ProblemSchema describes the exchange document written by Problem.MarshalJSON.
var ProblemSchema = &Schema{
	Name: "math-problem",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{"type": "string"},
			"kind": map[string]any{
				"type": "string",
				"enum": []any{string(KindBasicOps), string(KindFraction), string(KindEquation), string(KindPolynomial)},
			},
			"level": map[string]any{
				"type":    "integer",
				"minimum": int(MinLevel),
				"maximum": int(MaxLevel),
			},
			"latex":  map[string]any{"type": "string"},
			"text":   map[string]any{"type": "string"},
			"inputs": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"payload": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"form": map[string]any{
						"type": "string",
						"enum": []any{"additive", "factor", "fraction", "equations", "quadratic"},
					},
				},
				"required": []any{"form"},
			},
			"answer": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"decimal": map[string]any{"type": "number"},
					"exact":   map[string]any{"type": "string", "pattern": `^-?\d+(/\d+)?$`},
					"integer": map[string]any{"type": "integer"},
					"unknowns": map[string]any{
						"type":                 "object",
						"additionalProperties": map[string]any{"type": "number"},
						"minProperties":        1,
					},
					"roots": numberArray,
				},
				"minProperties": 1,
			},
		},
		"required": []any{"kind", "level", "payload", "answer"},
		"allOf": []any{
			kindRule(KindEquation, []any{"unknowns"}, []any{"equations"}),
			kindRule(KindPolynomial, []any{"roots"}, []any{"quadratic"}),
			kindRule(KindFraction, nil, []any{"fraction"}),
			kindRule(KindBasicOps, nil, []any{"additive", "factor"}),
		},
	},
}

// kindRule ties a kind to the payload forms and answer fields it requires.
func kindRule(kind Kind, answerRequired []any, forms []any) map[string]any {
	answer := map[string]any{"anyOf": []any{
		map[string]any{"required": []any{"decimal"}},
		map[string]any{"required": []any{"exact"}},
		map[string]any{"required": []any{"integer"}},
	}}
	if answerRequired != nil {
		answer = map[string]any{"required": answerRequired}
	}
	return map[string]any{
		"if": map[string]any{
			"properties": map[string]any{"kind": map[string]any{"const": string(kind)}},
			"required":   []any{"kind"},
		},
		"then": map[string]any{
			"properties": map[string]any{
				"payload": map[string]any{
					"properties": map[string]any{"form": map[string]any{"enum": forms}},
				},
				"answer": answer,
			},
		},
	}
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// ValidateJSON checks raw against ProblemSchema.
func ValidateJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	compiled, err := getCompiledSchema(ProblemSchema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", ProblemSchema.Name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// DecodeProblem validates raw against ProblemSchema and decodes it.
func DecodeProblem(raw []byte) (*Problem, error) {
	if err := ValidateJSON(raw); err != nil {
		return nil, err
	}
	var p Problem
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not Go
	// maps with typed slices; round-trip through JSON to normalize.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
