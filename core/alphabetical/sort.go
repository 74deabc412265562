package alphabetical

import "slices"

// SortAll returns the items ordered under o. The input slice is not
// modified; the result is a permutation of it. Each item's key is computed
// exactly once (decorate, sort, undecorate), and the sort is stable: items
// with equal keys keep their input order.
func SortAll(o Options, items []string) []string {
	type decorated struct {
		item string
		key  string
	}
	decs := make([]decorated, len(items))
	for i, item := range items {
		decs[i] = decorated{item: item, key: Normalize(o, item)}
	}
	slices.SortStableFunc(decs, func(a, b decorated) int {
		return CompareKeys(o, a.key, b.key)
	})
	out := make([]string, len(decs))
	for i, d := range decs {
		out[i] = d.item
	}
	return out
}
