package output

import (
	"encoding/json"
	"fmt"

	"github.com/hightemp/ccgen/internal/countries"
	"github.com/invopop/jsonschema"
)

// JSONSchemaFormatter renders a JSON Schema describing the country code
// string, one oneOf branch per pair.
type JSONSchemaFormatter struct {
	Reference string
}

// Format renders the schema as indented JSON.
func (f *JSONSchemaFormatter) Format(set countries.Set) ([]byte, error) {
	schema := &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       TypeName,
		Description: fmt.Sprintf("%s. Generated using %s", TypeDoc, f.Reference),
		Type:        "string",
		Default:     DefaultVariant,
		OneOf:       make([]*jsonschema.Schema, 0, len(set)),
	}
	for _, p := range set {
		schema.OneOf = append(schema.OneOf, &jsonschema.Schema{
			Const: p.Code,
			Title: p.Name,
		})
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
