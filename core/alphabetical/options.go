package alphabetical

import "fmt"

// SortMode selects whether inter-word spacing participates in ordering.
type SortMode string

// Sort mode constants.
const (
	// LetterByLetter ignores word breaks entirely: "New York" and "Newark"
	// interleave as if each were one unbroken token.
	LetterByLetter SortMode = "letter-by-letter"
	// WordByWord ranks a word break below every letter, so "New York"
	// sorts before "Newark".
	WordByWord SortMode = "word-by-word"
)

// validSortModes is the set of valid sort modes.
var validSortModes = map[SortMode]bool{
	LetterByLetter: true,
	WordByWord:     true,
}

// IsValid returns true if the sort mode is valid.
func (m SortMode) IsValid() bool {
	return validSortModes[m]
}

// NumberSort selects how a digit run is represented in the sort key.
type NumberSort string

// Number sort constants.
const (
	// NumberName replaces the run with its English spelling, so "40" sorts
	// at "forty".
	NumberName NumberSort = "number-name"
	// NumericalValue keeps the digits and compares them by magnitude, so
	// "9" sorts before "10".
	NumericalValue NumberSort = "numerical-value"
	// NumericalIndex buckets runs by their leading digit ahead of any
	// comparison, the way a printed index groups "20-29" apart from "2-9".
	NumericalIndex NumberSort = "numerical-index"
)

// validNumberSorts is the set of valid number sorts.
var validNumberSorts = map[NumberSort]bool{
	NumberName:     true,
	NumericalValue: true,
	NumericalIndex: true,
}

// IsValid returns true if the number sort is valid.
func (n NumberSort) IsValid() bool {
	return validNumberSorts[n]
}

// Options configures the normalization pipeline. It is a plain value: pass it
// by value and never mutate a shared instance. The three NumberSort fields
// apply independently to a digit run depending on whether the run sits at the
// very start of the normalized string, strictly inside it, or at its very
// end; a run spanning the whole string counts as initial.
type Options struct {
	// Mode selects letter-by-letter or word-by-word ordering.
	Mode SortMode

	// InitialNumbers applies to a digit run at the start of the string.
	InitialNumbers NumberSort

	// InternalNumbers applies to a digit run strictly inside the string.
	InternalNumbers NumberSort

	// TerminalNumbers applies to a digit run at the end of the string.
	TerminalNumbers NumberSort

	// Years reads a bare four-digit run as a spoken year ("1984" sorts at
	// "nineteen eighty four") before the NumberSort rules see it.
	Years bool

	// RomanNumerals decodes well-formed roman-numeral tokens to digits
	// before the NumberSort rules see them.
	RomanNumerals bool

	// IgnoreInitialArticle drops a leading "the " or "a " token.
	IgnoreInitialArticle bool
}

// Validate reports the first invalid enum field, if any.
func (o Options) Validate() error {
	if !o.Mode.IsValid() {
		return fmt.Errorf("invalid sort mode %q", o.Mode)
	}
	for _, ns := range []NumberSort{o.InitialNumbers, o.InternalNumbers, o.TerminalNumbers} {
		if !ns.IsValid() {
			return fmt.Errorf("invalid number sort %q", ns)
		}
	}
	return nil
}

// BookIndex orders entries the way a printed non-fiction index does:
// word by word, leading articles ignored, initial numbers bucketed by leading
// digit, other numbers sorted under their English name, years read aloud,
// roman numerals decoded.
var BookIndex = Options{
	Mode:                 WordByWord,
	InitialNumbers:       NumericalIndex,
	InternalNumbers:      NumberName,
	TerminalNumbers:      NumberName,
	Years:                true,
	RomanNumerals:        true,
	IgnoreInitialArticle: true,
}

// Filename orders strings the way file browsers list directories:
// letter by letter, every digit run compared by numerical value, no article
// or numeral rewriting.
var Filename = Options{
	Mode:            LetterByLetter,
	InitialNumbers:  NumericalValue,
	InternalNumbers: NumericalValue,
	TerminalNumbers: NumericalValue,
}
