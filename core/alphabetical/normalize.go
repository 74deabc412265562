package alphabetical

import (
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/CaptainLexington/alphabetical/core/roman"
	"github.com/CaptainLexington/alphabetical/core/spell"
)

// digitRuns matches every maximal run of ASCII digits.
var digitRuns = regexp.MustCompile(`[0-9]+`)

// foldPool hands out case/charset fold transformers. transform.Chain values
// carry internal buffers, so a chain cannot be shared between goroutines.
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			runes.Map(func(r rune) rune {
				if r == '(' || r == ')' {
					return ' '
				}
				return r
			}),
			runes.Remove(runes.Predicate(dropped)),
		)
	},
}

// dropped reports runes deleted by the charset fold: everything that is not
// a lowercase ASCII letter, an ASCII digit, a Latin-1 accented letter, or a
// space. Uppercase has already been lowered by the time this runs.
func dropped(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
		return false
	case r >= 0x00C0 && r <= 0x00FF:
		// Latin-1 supplement letters, minus × and ÷.
		return r == 0x00D7 || r == 0x00F7
	}
	return true
}

// Normalize computes the canonical sort key for s under o. It is
// deterministic and never fails: a digit run the speller cannot translate is
// kept as raw digits rather than aborting the key.
//
// The stages run in a fixed order: case and charset fold, initial-article
// strip, spoken-year substitution, roman-numeral substitution, per-position
// digit-run transform, and finally the sort-mode fold that removes spaces
// (letter by letter) or maps them to 'A' (word by word) so a word break
// sorts below every letter.
func Normalize(o Options, s string) string {
	s = fold(s)

	if o.IgnoreInitialArticle {
		if rest, ok := strings.CutPrefix(s, "the "); ok {
			s = rest
		} else if rest, ok := strings.CutPrefix(s, "a "); ok {
			s = rest
		}
	}

	if o.Years {
		s = digitRuns.ReplaceAllStringFunc(s, func(run string) string {
			if len(run) != 4 {
				return run
			}
			phrase, err := spell.Year(run)
			if err != nil {
				return run
			}
			return phrase
		})
	}

	if o.RomanNumerals {
		s = roman.ReplaceAll(s)
	}

	s = transformDigitRuns(o, s)

	if o.Mode == LetterByLetter {
		return strings.ReplaceAll(s, " ", "")
	}
	return strings.ReplaceAll(s, " ", "A")
}

// fold lowercases s, turns parentheses into spaces, and deletes every rune
// outside the working charset. This must run before any stage that looks at
// word boundaries.
func fold(s string) string {
	s = strings.ToLower(s)
	t := foldPool.Get().(transform.Transformer)
	defer foldPool.Put(t)
	t.Reset()
	out, _, err := transform.String(t, s)
	if err != nil {
		// Map and Remove do not error; invalid UTF-8 becomes U+FFFD and
		// is dropped by the predicate.
		return s
	}
	return out
}

// transformDigitRuns applies the position-specific NumberSort rule to every
// remaining digit run. A run starting at index 0 is initial (even when it is
// also terminal), a run ending at the string's end is terminal, anything
// else is internal.
func transformDigitRuns(o Options, s string) string {
	locs := digitRuns.FindAllStringIndex(s, -1)
	if locs == nil {
		return s
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		rule := o.InternalNumbers
		switch {
		case start == 0:
			rule = o.InitialNumbers
		case end == len(s):
			rule = o.TerminalNumbers
		}
		b.WriteString(s[last:start])
		b.WriteString(applyNumberSort(rule, s[start:end]))
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}

// applyNumberSort rewrites a single digit run under the given rule. Speller
// failures (runs beyond the trillions) fall back to the raw digits, which
// compare like NumericalValue.
func applyNumberSort(rule NumberSort, run string) string {
	switch rule {
	case NumberName:
		words, err := spell.Spell(run)
		if err != nil {
			return run
		}
		return words
	case NumericalIndex:
		// Bucket letter from the leading digit: 1→A … 9→I. A leading
		// zero gets no letter.
		if run[0] == '0' {
			return run
		}
		return string(rune('A'+run[0]-'1')) + run
	default:
		return run
	}
}
