package alphabetical

import (
	"strings"

	"github.com/CaptainLexington/alphabetical/core/natural"
)

// CompareKeys orders two canonical keys produced under o. Both keys must
// come from the same Options value; keys from different configurations are
// not comparable.
//
// When any position keeps literal digits (NumericalValue), the keys compare
// in natural order so "9" sorts before "10". Otherwise every digit run has
// already been spelled or bucket-prefixed and plain bytewise order is both
// correct and cheaper.
func CompareKeys(o Options, ka, kb string) int {
	if o.InitialNumbers == NumericalValue ||
		o.InternalNumbers == NumericalValue ||
		o.TerminalNumbers == NumericalValue {
		return natural.Compare(ka, kb)
	}
	return strings.Compare(ka, kb)
}

// Compare orders two raw strings under o. It reports a negative value when a
// sorts first, zero when the two normalize to the same key, and a positive
// value when b sorts first. For repeated comparisons over the same strings,
// prefer SortAll or memoize Normalize yourself.
func Compare(o Options, a, b string) int {
	return CompareKeys(o, Normalize(o, a), Normalize(o, b))
}
