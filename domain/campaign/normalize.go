package campaign

import (
	"regexp"
	"strconv"
	"strings"

	"cargas/domain/tabular"
	apperrors "cargas/internal/errors"
)

var nonDigitRE = regexp.MustCompile(`\D+`)

// CellText normalizes a raw cell for phone numbers, operation numbers and
// IDs: numeric-typed cells come through as "56912345678.0", so a trailing
// ".0" is stripped before trimming surrounding whitespace.
func CellText(s string) string {
	s = strings.TrimSuffix(s, ".0")
	return strings.TrimSpace(s)
}

// TextColumn applies CellText over a whole column. An empty header yields a
// blank series of the table's length, which is how optional unresolved
// fields materialize in the outputs.
func TextColumn(t *tabular.Table, header string) []string {
	out := make([]string, t.Len())
	if header == "" {
		return out
	}
	for i := range t.Rows {
		out[i] = CellText(t.Rows[i][header])
	}
	return out
}

// IDDigits reduces a national ID to its numeric digits: thousand-separator
// periods are dropped, everything from the check-digit dash on is cut, and
// any remaining non-digit character is removed. Returns the empty string
// when no digits survive.
func IDDigits(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	if i := strings.Index(s, "-"); i >= 0 {
		s = s[:i]
	}
	return nonDigitRE.ReplaceAllString(s, "")
}

// RepairDecimalComma rewrites the first comma of a cell to a period, leaving
// comma-free cells untouched. This is deliberately a single substitution:
// the legacy behavior it preserves never specified what a cell with both a
// thousands and a decimal comma should become, so cells with more than one
// comma keep their remaining commas rather than being silently regrouped.
func RepairDecimalComma(s string) string {
	if !strings.Contains(s, ",") {
		return s
	}
	return strings.Replace(s, ",", ".", 1)
}

// GroupThousands renders a numeric-like cell as a thousands-grouped integer
// with no decimal part ("1234567.8" -> "1,234,568"). Commas are stripped
// before parsing so already-grouped input re-parses cleanly. A non-numeric
// cell fails the whole normalization with a FormatError naming the column.
func GroupThousands(column, s string) (string, error) {
	raw := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", apperrors.FormatError(column, s)
	}
	n := strconv.FormatFloat(f, 'f', 0, 64)
	neg := strings.HasPrefix(n, "-")
	if neg {
		n = n[1:]
	}
	var b strings.Builder
	for i, d := range n {
		if i > 0 && (len(n)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String(), nil
	}
	return b.String(), nil
}
