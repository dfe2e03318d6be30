package output

import (
	"bytes"
	"fmt"

	"github.com/hightemp/ccgen/internal/countries"
)

// RustFormatter renders the Country enum with Default, Display and
// FromStr implementations.
type RustFormatter struct {
	Reference string
}

const rustDefault = `impl Default for Country {
    fn default() -> Self {
        Self::` + DefaultVariant + `
    }
}
`

const rustDisplay = `impl std::fmt::Display for Country {
    fn fmt(&self, f: &mut std::fmt::Formatter<'_>) -> std::fmt::Result {
        std::fmt::Debug::fmt(&self, f)
    }
}
`

// Format renders the Rust source document. The Default impl always names
// DefaultVariant whether or not the set contains it.
func (f *RustFormatter) Format(set countries.Set) ([]byte, error) {
	var b bytes.Buffer

	fmt.Fprintf(&b, "//! Generated using %s\n", f.Reference)
	b.WriteString("\n")
	b.WriteString("use std::str::FromStr;\n")
	b.WriteString("use serde::{Deserialize, Serialize};\n")
	b.WriteString("use crate::errors::InvalidCountryError;\n")
	b.WriteString("\n")

	fmt.Fprintf(&b, "/// %s\n", TypeDoc)
	b.WriteString("#[derive(Debug, Serialize, Deserialize, PartialEq, Eq)]\n")
	fmt.Fprintf(&b, "pub enum %s {\n", TypeName)
	for _, p := range set {
		fmt.Fprintf(&b, "    /// %s\n", p.Name)
		fmt.Fprintf(&b, "    %s,\n", p.Code)
	}
	b.WriteString("}\n")
	b.WriteString("\n")

	b.WriteString(rustDefault)
	b.WriteString("\n")
	b.WriteString(rustDisplay)
	b.WriteString("\n")

	fmt.Fprintf(&b, "impl FromStr for %s {\n", TypeName)
	b.WriteString("    type Err = InvalidCountryError;\n")
	b.WriteString("\n")
	b.WriteString("    fn from_str(s: &str) -> Result<Self, Self::Err> {\n")
	b.WriteString("        match s {\n")
	for _, p := range set {
		fmt.Fprintf(&b, "            %q => Ok(Self::%s),\n", p.Code, p.Code)
	}
	b.WriteString("            country => Err(InvalidCountryError(country.to_owned())),\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	return b.Bytes(), nil
}
