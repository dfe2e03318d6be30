package countries

import (
	"fmt"
	"strings"
)

// Mode selects how table text is turned into pairs.
type Mode string

const (
	// ModeRows pairs the first two cells of every table row (default).
	ModeRows Mode = "rows"
	// ModeLines pairs flattened text lines by even/odd position.
	ModeLines Mode = "lines"
)

// ParseMode parses a mode string.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "rows", "":
		return ModeRows, nil
	case "lines":
		return ModeLines, nil
	default:
		return "", fmt.Errorf("invalid mode: %s (use rows or lines)", s)
	}
}

// MismatchError is returned when the number of codes and names differ.
type MismatchError struct {
	Codes int
	Names int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("code/name count mismatch: %d codes, %d names", e.Codes, e.Names)
}

// RowError is returned for a table row that cannot be paired.
type RowError struct {
	Row    int
	Cells  int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (%d cells): %s", e.Row, e.Cells, e.Reason)
}

// FromLines pairs normalized text by line position. Lines at even
// positions are codes and lines at odd positions are names. Empty lines
// are skipped but still advance the position.
func FromLines(text string) (Set, error) {
	var codes, names []string
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		if i%2 == 0 {
			codes = append(codes, line)
		} else {
			names = append(names, line)
		}
	}

	if len(codes) != len(names) {
		return nil, &MismatchError{Codes: len(codes), Names: len(names)}
	}

	set := make(Set, len(codes))
	for i := range codes {
		set[i] = Pair{Code: codes[i], Name: names[i]}
	}
	return set, nil
}

// FromRows pairs table rows by column: the first cell is the code and the
// second the name. Marker text is deleted from both. Rows where both are
// empty are skipped.
func FromRows(rows [][]string) (Set, error) {
	set := make(Set, 0, len(rows))
	for i, cells := range rows {
		if len(cells) < 2 {
			return nil, &RowError{Row: i, Cells: len(cells), Reason: "expected code and name cells"}
		}

		code := strings.TrimSpace(stripMarker(cells[0]))
		name := strings.TrimSpace(stripMarker(cells[1]))
		if code == "" && name == "" {
			continue
		}
		if code == "" {
			return nil, &RowError{Row: i, Cells: len(cells), Reason: "empty code for " + name}
		}

		set = append(set, Pair{Code: code, Name: name})
	}
	return set, nil
}
