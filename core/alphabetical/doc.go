// Package alphabetical orders English words and phrases the way a librarian,
// editor, or index compiler would, rather than by raw code points: leading
// articles can be ignored, numbers can be compared by magnitude or by their
// spelled-out name, roman numerals are normalized, and punctuation never
// participates.
//
// # Sort Keys
//
// Everything is built on Normalize, a pure function from an Options value and
// an input string to a canonical sort key. Keys are internal: they are only
// meaningful relative to the Options that produced them and are never meant
// for display. Compare and SortAll wrap Normalize for pairwise and batch use.
//
// # Options
//
// Options is an immutable value; two presets cover the common cases:
//
//   - BookIndex: word-by-word order, leading articles ignored, internal
//     numbers sorted by their English name, roman numerals decoded, four
//     digit runs read as spoken years. How a printed non-fiction index
//     orders its entries.
//   - Filename: letter-by-letter order with every digit run compared by
//     numerical value, so "img2.png" sorts before "img10.png". How file
//     browsers order directory listings.
//
// # Example
//
//	sorted := alphabetical.SortAll(alphabetical.BookIndex,
//	    []string{"The Who", "A-Ha", "Queen"})
//	// sorted is ["A-Ha", "Queen", "The Who"]
//
// All functions are safe for concurrent use; there is no shared mutable
// state and no cross-call cache.
package alphabetical
