package countries

import (
	"regexp"
	"strings"
)

// Marker is the annotation the source page attaches to table cells.
const Marker = "Required"

var blankRuns = regexp.MustCompile(`\n{2,}`)

// Normalize deletes every occurrence of Marker, including ones inside
// longer words, then collapses runs of two or more newlines into one.
// Deletion repeats until no occurrence is left, so the result is stable
// under a second application.
func Normalize(text string) string {
	return blankRuns.ReplaceAllString(stripMarker(text), "\n")
}

func stripMarker(s string) string {
	for strings.Contains(s, Marker) {
		s = strings.ReplaceAll(s, Marker, "")
	}
	return s
}
