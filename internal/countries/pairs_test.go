package countries

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
		wantErr  bool
	}{
		{"rows", ModeRows, false},
		{"", ModeRows, false},
		{"lines", ModeLines, false},
		{"parity", "", true},
		{"ROWS", "", true},
	}

	for _, tc := range tests {
		mode, err := ParseMode(tc.input)
		if tc.wantErr {
			assert.Error(t, err, "ParseMode(%q)", tc.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.expected, mode)
	}
}

func TestFromLines(t *testing.T) {
	set, err := FromLines("US\nUnited States\nGB\nUnited Kingdom\n")
	require.NoError(t, err)

	assert.Equal(t, Set{
		{Code: "US", Name: "United States"},
		{Code: "GB", Name: "United Kingdom"},
	}, set)
}

func TestFromLinesCRLF(t *testing.T) {
	set, err := FromLines("US\r\nUnited States\r\n")
	require.NoError(t, err)
	assert.Equal(t, Set{{Code: "US", Name: "United States"}}, set)
}

func TestFromLinesCountsSkippedLines(t *testing.T) {
	// The leading empty line occupies position 0, shifting every
	// following line by one.
	set, err := FromLines("\nUS\nUnited States")
	require.NoError(t, err)
	assert.Equal(t, Set{{Code: "United States", Name: "US"}}, set)
}

func TestFromLinesWhitespaceLinesKept(t *testing.T) {
	set, err := FromLines("US\n \nGB\nUnited Kingdom")
	require.NoError(t, err)
	assert.Equal(t, Set{
		{Code: "US", Name: " "},
		{Code: "GB", Name: "United Kingdom"},
	}, set)
}

func TestFromLinesMismatch(t *testing.T) {
	_, err := FromLines("US\nUnited States\nGB\n")
	require.Error(t, err)

	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 2, mismatch.Codes)
	assert.Equal(t, 1, mismatch.Names)
	assert.Contains(t, err.Error(), "2 codes, 1 names")
}

func TestFromLinesEmpty(t *testing.T) {
	set, err := FromLines("")
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestFromLinesParity(t *testing.T) {
	// Normalized text has no blank runs, so non-empty lines sit at
	// consecutive positions: an even count always balances and an odd
	// count never does.
	for n := 0; n <= 12; n++ {
		lines := make([]string, n)
		for i := range lines {
			lines[i] = string(rune('A'+i)) + "X"
		}
		for _, text := range []string{
			strings.Join(lines, "\n"),
			strings.Join(lines, "\n") + "\n",
			Normalize(strings.Join(lines, "\n\n\n")),
		} {
			set, err := FromLines(text)
			if n%2 == 0 {
				require.NoError(t, err, "n=%d", n)
				assert.Len(t, set, n/2)
				assert.Equal(t, len(set.Codes()), len(set.Names()))
				continue
			}
			var mismatch *MismatchError
			assert.True(t, errors.As(err, &mismatch), "n=%d", n)
		}
	}
}

func TestNormalizeThenFromLines(t *testing.T) {
	raw := "US\nRequired\n\n\nUnited States\n\nGB\n\nUnited KingdomRequired\n\n"
	set, err := FromLines(Normalize(raw))
	require.NoError(t, err)
	assert.Equal(t, Set{
		{Code: "US", Name: "United States"},
		{Code: "GB", Name: "United Kingdom"},
	}, set)
}

func TestFromRows(t *testing.T) {
	rows := [][]string{
		{"US", "United States"},
		{"GBRequired", " United Kingdom "},
		{"", ""},
		{"DE", "Germany", "extra"},
	}

	set, err := FromRows(rows)
	require.NoError(t, err)
	assert.Equal(t, Set{
		{Code: "US", Name: "United States"},
		{Code: "GB", Name: "United Kingdom"},
		{Code: "DE", Name: "Germany"},
	}, set)
}

func TestFromRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		row  int
	}{
		{"single cell", [][]string{{"US", "United States"}, {"GB"}}, 1},
		{"empty code", [][]string{{"Required", "Nowhere"}}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromRows(tc.rows)
			var rowErr *RowError
			require.True(t, errors.As(err, &rowErr), "got %v", err)
			assert.Equal(t, tc.row, rowErr.Row)
		})
	}
}
