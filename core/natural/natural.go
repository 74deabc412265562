// Package natural compares strings with embedded digit runs by numerical
// value instead of character order, so "img2" sorts before "img10".
package natural

import (
	"cmp"
	"strings"
)

// Compare orders a and b naturally. Each string is walked as an alternating
// sequence of digit runs and non-digit runs: digit runs compare by value
// (with fewer leading zeros winning a value tie, so "7" sorts before "007"),
// everything else compares by code point. A strict prefix sorts first.
//
// Digit runs are compared as text after stripping leading zeros, longer
// stripped run first by length then bytewise, so arbitrarily long runs never
// overflow an integer type.
func Compare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			ie, je := runEnd(a, i), runEnd(b, j)
			if c := compareRuns(a[i:ie], b[j:je]); c != 0 {
				return c
			}
			i, j = ie, je
			continue
		}
		if a[i] != b[j] {
			return cmp.Compare(a[i], b[j])
		}
		i++
		j++
	}
	return cmp.Compare(len(a)-i, len(b)-j)
}

// compareRuns compares two digit runs by numerical value, breaking value
// ties in favor of the run with fewer leading zeros.
func compareRuns(ra, rb string) int {
	sa := strings.TrimLeft(ra, "0")
	sb := strings.TrimLeft(rb, "0")
	if c := cmp.Compare(len(sa), len(sb)); c != 0 {
		return c
	}
	if c := strings.Compare(sa, sb); c != 0 {
		return c
	}
	return cmp.Compare(len(ra), len(rb))
}

// runEnd returns the index just past the digit run starting at i.
func runEnd(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
