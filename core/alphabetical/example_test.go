package alphabetical_test

import (
	"fmt"

	"github.com/CaptainLexington/alphabetical/core/alphabetical"
)

// Example sorts band names the way a record-shop index would.
func Example() {
	sorted := alphabetical.SortAll(alphabetical.BookIndex,
		[]string{"The Who", "A-Ha", "Queen"})
	for _, name := range sorted {
		fmt.Println(name)
	}
	// Output:
	// A-Ha
	// Queen
	// The Who
}

// ExampleSortAll_filename shows natural ordering of numbered files.
func ExampleSortAll_filename() {
	sorted := alphabetical.SortAll(alphabetical.Filename,
		[]string{"img10.png", "img2.png", "img1.png"})
	fmt.Println(sorted)
	// Output:
	// [img1.png img2.png img10.png]
}

// ExampleNormalize exposes the canonical key itself, for callers who want
// to memoize it.
func ExampleNormalize() {
	fmt.Println(alphabetical.Normalize(alphabetical.BookIndex, "A Tale of Two Cities"))
	fmt.Println(alphabetical.Normalize(alphabetical.BookIndex, "1984"))
	// Output:
	// taleAofAtwoAcities
	// nineteenAeightyAfour
}

func ExampleCompare() {
	fmt.Println(alphabetical.Compare(alphabetical.Filename, "img9.png", "img10.png"))
	// Output:
	// -1
}
