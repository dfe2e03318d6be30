package output

import (
	"bytes"
	"fmt"

	"github.com/hightemp/ccgen/internal/countries"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter renders an enum catalog: the type name and one item per
// pair with its position.
type YAMLFormatter struct {
	Reference string
}

// EnumCatalog is the YAML document layout.
type EnumCatalog struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Default     string     `yaml:"default,omitempty"`
	Items       []EnumItem `yaml:"items"`
}

// EnumItem is one catalog entry.
type EnumItem struct {
	Code  string `yaml:"code"`
	Name  string `yaml:"name"`
	Order int    `yaml:"order"`
}

// Format renders the YAML document.
func (f *YAMLFormatter) Format(set countries.Set) ([]byte, error) {
	catalog := EnumCatalog{
		Name:        TypeName,
		Description: TypeDoc,
		Default:     DefaultVariant,
		Items:       make([]EnumItem, 0, len(set)),
	}
	for i, p := range set {
		catalog.Items = append(catalog.Items, EnumItem{Code: p.Code, Name: p.Name, Order: i + 1})
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "# Generated using %s\n", f.Reference)

	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(catalog); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}

	return b.Bytes(), nil
}
