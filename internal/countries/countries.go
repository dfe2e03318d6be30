// Package countries builds ISO-3166 country code and name pairs from
// scraped table text.
package countries

import (
	"strings"
	"sync"

	iso "github.com/biter777/countries"
)

// Pair is one country code and its human-readable name.
type Pair struct {
	Code string
	Name string
}

// Set is an ordered list of pairs. Order follows the source table.
type Set []Pair

// Codes returns the codes in order.
func (s Set) Codes() []string {
	result := make([]string, len(s))
	for i, p := range s {
		result[i] = p.Code
	}
	return result
}

// Names returns the names in order.
func (s Set) Names() []string {
	result := make([]string, len(s))
	for i, p := range s {
		result[i] = p.Name
	}
	return result
}

// Has reports whether code is present in the set.
func (s Set) Has(code string) bool {
	for _, p := range s {
		if p.Code == code {
			return true
		}
	}
	return false
}

var (
	codeToName map[string]string
	once       sync.Once
)

func loadKnown() {
	once.Do(func() {
		all := iso.All()
		codeToName = make(map[string]string, len(all))
		for _, c := range all {
			codeToName[c.Alpha2()] = c.String()
		}
	})
}

// IsKnown checks if code is an assigned ISO-3166-1 alpha-2 code.
func IsKnown(code string) bool {
	loadKnown()
	_, ok := codeToName[strings.ToUpper(code)]
	return ok
}

// KnownName returns the reference English name for code.
// Returns empty string if not found.
func KnownName(code string) string {
	loadKnown()
	return codeToName[strings.ToUpper(code)]
}

// Unknown returns the pairs whose code is not a known alpha-2 code.
func Unknown(set Set) []Pair {
	var result []Pair
	for _, p := range set {
		if !IsKnown(p.Code) {
			result = append(result, p)
		}
	}
	return result
}
