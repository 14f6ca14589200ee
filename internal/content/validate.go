package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// courseSchema is the JSON schema author-published course files must satisfy
// before they are accepted into a catalog.
var courseSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "title", "scenarios"},
	"properties": map[string]any{
		"id":                map[string]any{"type": "string", "minLength": 1},
		"slug":              map[string]any{"type": "string"},
		"title":             map[string]any{"type": "string", "minLength": 1},
		"description":       map[string]any{"type": "string"},
		"level":             map[string]any{"type": "string", "enum": []any{"basico", "intermedio", "avanzado"}},
		"estimated_minutes": map[string]any{"type": "integer", "minimum": 0},
		"sort_order":        map[string]any{"type": "integer"},
		"scenarios": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "title", "prompt", "options"},
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "minLength": 1},
					"course_id":   map[string]any{"type": "string"},
					"order_index": map[string]any{"type": "integer"},
					"title":       map[string]any{"type": "string", "minLength": 1},
					"prompt":      map[string]any{"type": "string", "minLength": 1},
					"mission":     map[string]any{"type": "string"},
					"tags":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items": map[string]any{
							"type":     "object",
							"required": []any{"id", "text", "feedback", "is_best"},
							"properties": map[string]any{
								"id":       map[string]any{"type": "string", "minLength": 1},
								"text":     map[string]any{"type": "string", "minLength": 1},
								"feedback": map[string]any{"type": "string"},
								"is_best":  map[string]any{"type": "boolean"},
							},
							"additionalProperties": false,
						},
					},
					"recall": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"id", "question", "choices", "correct_choice_id"},
							"properties": map[string]any{
								"id":       map[string]any{"type": "string", "minLength": 1},
								"question": map[string]any{"type": "string", "minLength": 1},
								"choices": map[string]any{
									"type":     "array",
									"minItems": 2,
									"items": map[string]any{
										"type":     "object",
										"required": []any{"id", "text"},
										"properties": map[string]any{
											"id":   map[string]any{"type": "string", "minLength": 1},
											"text": map[string]any{"type": "string", "minLength": 1},
										},
										"additionalProperties": false,
									},
								},
								"correct_choice_id": map[string]any{"type": "string", "minLength": 1},
								"explanation":       map[string]any{"type": "string"},
							},
							"additionalProperties": false,
						},
					},
				},
				"additionalProperties": false,
			},
		},
	},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledCourseSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(courseSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://course.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// ParseCourse validates raw course JSON against the course schema and
// decodes it. Structural rules the schema can't express (exactly one best
// option, correct choice membership) are enforced by NewCatalog.
func ParseCourse(raw []byte) (*Course, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledCourseSchema()
	if err != nil {
		return nil, fmt.Errorf("compile course schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var course Course
	if err := json.Unmarshal(raw, &course); err != nil {
		return nil, fmt.Errorf("decode course: %w", err)
	}
	return &course, nil
}
