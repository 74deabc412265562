// Package roman recognizes and decodes well-formed roman numerals embedded in
// text. Only whole tokens matching the strict subtractive grammar are
// touched; malformed sequences such as "iiii" or "vx" are left alone, and a
// token is never partially substituted.
package roman

import (
	"regexp"
	"strconv"
	"strings"
)

// Pattern matches a complete token in the strict roman-numeral grammar:
// thousands (M*), then an optional hundreds group (CM, CD, or D followed by
// up to three C), tens (XC, XL, or L with up to three X), and ones (IX, IV,
// or V with up to three I). Anchored, so a token either matches in full or
// not at all. Case-insensitive; the pipeline feeds it lowercase text.
var Pattern = regexp.MustCompile(`(?i)^m*(?:cm|cd|d?c{0,3})(?:xc|xl|l?x{0,3})(?:ix|iv|v?i{0,3})$`)

// values maps each numeral to its value, both cases.
var values = map[byte]int{
	'm': 1000, 'd': 500, 'c': 100, 'l': 50, 'x': 10, 'v': 5, 'i': 1,
	'M': 1000, 'D': 500, 'C': 100, 'L': 50, 'X': 10, 'V': 5, 'I': 1,
}

// Decode returns the decimal value of a token matched by Pattern. It scans
// right to left, subtracting a numeral when it is smaller than the numeral
// scanned just before it; this covers every subtractive pair without
// special-casing them. The result is unspecified for tokens Pattern would
// not match.
func Decode(token string) int {
	total, prev := 0, 0
	for i := len(token) - 1; i >= 0; i-- {
		v := values[token[i]]
		if v < prev {
			total -= v
		} else {
			total += v
		}
		prev = v
	}
	return total
}

// ReplaceAll rewrites every space-delimited word of s that is a well-formed
// roman numeral to its decimal digit string. Words that do not fully match
// the grammar, including words with accented or numeric characters, pass
// through untouched. Runs of spaces are preserved.
func ReplaceAll(s string) string {
	if !strings.ContainsAny(s, "mdclxviMDCLXVI") {
		return s
	}
	words := strings.Split(s, " ")
	for i, w := range words {
		if w != "" && Pattern.MatchString(w) {
			words[i] = strconv.Itoa(Decode(w))
		}
	}
	return strings.Join(words, " ")
}
