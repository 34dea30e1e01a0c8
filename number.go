package shape

import (
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// epsilon is the absolute tolerance used for all geometric comparisons.
const epsilon = 1e-9

func near(x, y float64) bool {
	d := x - y
	return d < epsilon && d > -epsilon
}

// scanNumber parses the longest number at the start of b, returning the number of
// bytes consumed. It returns 0 bytes if b doesn't start with a number.
func scanNumber(b []byte) (float64, int) {
	if len(b) == 0 {
		return 0, 0
	}
	// A lone sign or dot isn't a number.
	v, n := strconv.ParseFloat(b)
	if n == 0 || !hasDigit(b[:n]) {
		return 0, 0
	}
	return v, n
}

func hasDigit(b []byte) bool {
	for _, c := range b {
		if c >= '0' && c <= '9' {
			return true
		}
	}
	return false
}

// parseNumber parses s, which must consist of a number and nothing else.
func parseNumber(s string) (float64, bool) {
	v, n := scanNumber([]byte(s))
	if n == 0 || n != len(s) {
		return 0, false
	}
	return v, true
}

// ParseLength parses a length such as "12", "-1.5e2" or "4px". Surrounding whitespace
// is ignored. Lengths that aren't plain numbers with an optional px suffix result in
// an error wrapping [ErrInvalidAttribute].
func ParseLength(s string) (float64, error) {
	t := strings.TrimSuffix(strings.TrimSpace(s), "px")
	v, ok := parseNumber(t)
	if !ok {
		return 0, syntaxError(ErrInvalidAttribute, s, -1, "not a length")
	}
	return v, nil
}

func isCommaWhitespace(c byte) bool {
	return c == ' ' || c == ',' || c == '\n' || c == '\r' || c == '\t' || c == '\f'
}

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && isCommaWhitespace(b[i]) {
		i++
	}
	return i
}

func skipWhitespace(b []byte) int {
	i := 0
	for i < len(b) && b[i] != ',' && isCommaWhitespace(b[i]) {
		i++
	}
	return i
}

// skipSeparator skips whitespace with at most one comma in it. It returns the number
// of bytes skipped and the offset of the comma, or -1.
func skipSeparator(b []byte) (int, int) {
	i := skipWhitespace(b)
	if i < len(b) && b[i] == ',' {
		comma := i
		i++
		i += skipWhitespace(b[i:])
		return i, comma
	}
	return i, -1
}
