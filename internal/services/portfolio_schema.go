package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"pjadhav.dev/internal/models"
)

// PortfolioSchema returns the JSON Schema of the portfolio document.
// No property is required and any property may be null; present values
// must have the right shape.
func PortfolioSchema() map[string]any {
	str := nullable("string")
	strList := map[string]any{"type": []string{"array", "null"}, "items": map[string]any{"type": "string"}}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"profile": object(map[string]any{
				"name":           str,
				"nickname":       str,
				"tagline":        str,
				"githubUsername": str,
				"profileImage":   str,
			}),
			"about": object(map[string]any{
				"intro": str,
				"education": map[string]any{
					"type": []string{"array", "null"},
					"items": record(map[string]any{
						"level": str,
						"year":  map[string]any{"type": []string{"integer", "null"}},
						"score": str,
					}),
				},
			}),
			"skills": map[string]any{
				"type": []string{"array", "null"},
				"items": map[string]any{
					"anyOf": []any{
						map[string]any{"type": "string"},
						map[string]any{
							"type":       "object",
							"properties": map[string]any{"name": map[string]any{"type": "string"}},
							"required":   []string{"name"},
						},
					},
				},
			},
			"projects": map[string]any{
				"type": []string{"array", "null"},
				"items": record(map[string]any{
					"title":        str,
					"description":  str,
					"techStack":    strList,
					"technologies": strList,
					"github":       str,
					"demo":         str,
				}),
			},
			"resume": object(map[string]any{"pdf": str}),
			"contact": object(map[string]any{
				"emails":   strList,
				"github":   str,
				"linkedin": str,
			}),
			"interests": object(map[string]any{"hobbies": strList}),
		},
	}
}

// object is an optional section; record is a list element, which may not be null.
func object(props map[string]any) map[string]any {
	return map[string]any{"type": []string{"object", "null"}, "properties": props}
}

func record(props map[string]any) map[string]any {
	return map[string]any{"type": "object", "properties": props}
}

func nullable(typ string) map[string]any {
	return map[string]any{"type": []string{typ, "null"}}
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	b, err := json.Marshal(PortfolioSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("portfolio.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	return compiler.Compile("portfolio.json")
})

// ValidatePortfolio checks a raw document against PortfolioSchema.
func ValidatePortfolio(doc []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("document does not match schema: %w", err)
	}
	return nil
}

// DecodePortfolio validates and decodes a raw document
func DecodePortfolio(doc []byte) (*models.PortfolioData, error) {
	if err := ValidatePortfolio(doc); err != nil {
		return nil, err
	}
	var data models.PortfolioData
	if err := json.Unmarshal(doc, &data); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio: %w", err)
	}
	return &data, nil
}
