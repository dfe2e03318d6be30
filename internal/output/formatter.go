// Package output renders country code sets into generated documents.
package output

import (
	"fmt"

	"github.com/hightemp/ccgen/internal/countries"
)

// Format names an output document type.
type Format string

const (
	// FormatRust renders a Rust enum with serde derives (default).
	FormatRust Format = "rust"
	// FormatYAML renders an enum catalog document.
	FormatYAML Format = "yaml"
	// FormatJSONSchema renders a JSON Schema for the country string type.
	FormatJSONSchema Format = "jsonschema"
)

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "rust", "":
		return FormatRust, nil
	case "yaml":
		return FormatYAML, nil
	case "jsonschema":
		return FormatJSONSchema, nil
	default:
		return "", fmt.Errorf("invalid format: %s (use rust, yaml, or jsonschema)", s)
	}
}

// Formatter renders a complete document for a set. Nothing is written
// anywhere until the whole document has been rendered.
type Formatter interface {
	Format(set countries.Set) ([]byte, error)
}

// New returns the formatter for format. reference is credited in the
// document header.
func New(format Format, reference string) (Formatter, error) {
	switch format {
	case FormatRust:
		return &RustFormatter{Reference: reference}, nil
	case FormatYAML:
		return &YAMLFormatter{Reference: reference}, nil
	case FormatJSONSchema:
		return &JSONSchemaFormatter{Reference: reference}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

const (
	// TypeName is the name of the generated type.
	TypeName = "Country"

	// TypeDoc documents the generated type.
	TypeDoc = "ISO-3166-1 country codes"

	// DefaultVariant is the variant returned by the generated Default impl.
	DefaultVariant = "US"
)
