// Package spell converts unsigned decimal digit strings and four-digit year
// tokens into their spoken English form.
//
// Spelling operates purely on the digit string: no sign, no decimal point, no
// grouping separators. An all-zero run (of any length) spells to the empty
// string rather than "zero"; callers relying on a zero contribution to a sort
// key depend on this.
package spell

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for translation failures.
var (
	// ErrInvalidDigits indicates a run containing a non-digit character.
	ErrInvalidDigits = errors.New("invalid digits")
	// ErrUnsupportedMagnitude indicates a run too large to have a magnitude word.
	ErrUnsupportedMagnitude = errors.New("unsupported magnitude")
)

// TranslationError reports a digit run that could not be spelled.
type TranslationError struct {
	Digits string // the offending run
	Err    error  // underlying sentinel
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("cannot spell %q: %v", e.Digits, e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}

// ones maps a single digit to its name. Zero is blank: a lone "0" falls under
// the all-zero rule, and a zero ones place contributes nothing to a tens pair.
var ones = [10]string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// teens maps the second digit of a "1x" pair to the pair's name.
var teens = [10]string{"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"}

// tens maps the first digit of a two-digit pair to its tens word.
var tens = [10]string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}

// magnitudes maps a count of digits remaining after the leading group to the
// group's magnitude word.
var magnitudes = map[int]string{
	3:  "thousand",
	6:  "million",
	9:  "billion",
	12: "trillion",
}

// Spell returns the English spelling of a non-empty unsigned decimal digit
// string, lowercase, words joined by single spaces. An all-zero input spells
// to "". It fails with ErrInvalidDigits if the input is empty or contains a
// non-digit byte, and with ErrUnsupportedMagnitude if the run extends beyond
// the trillions.
func Spell(digits string) (string, error) {
	if digits == "" {
		return "", &TranslationError{Digits: digits, Err: ErrInvalidDigits}
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", &TranslationError{Digits: digits, Err: ErrInvalidDigits}
		}
	}
	return group(digits)
}

// group spells an already-validated digit string.
func group(d string) (string, error) {
	if allZero(d) {
		return "", nil
	}
	switch n := len(d); {
	case n == 1:
		return ones[d[0]-'0'], nil
	case n == 2:
		if d[0] == '1' {
			return teens[d[1]-'0'], nil
		}
		return join(tens[d[0]-'0'], ones[d[1]-'0']), nil
	case n == 3:
		rest, err := group(d[1:])
		if err != nil {
			return "", err
		}
		if hundreds := ones[d[0]-'0']; hundreds != "" {
			return join(hundreds, "hundred", rest), nil
		}
		return rest, nil
	default:
		head := n % 3
		if head == 0 {
			head = 3
		}
		magnitude, ok := magnitudes[n-head]
		if !ok {
			return "", &TranslationError{Digits: d, Err: ErrUnsupportedMagnitude}
		}
		lead, err := group(d[:head])
		if err != nil {
			return "", err
		}
		rest, err := group(d[head:])
		if err != nil {
			return "", err
		}
		return join(lead, magnitude, rest), nil
	}
}

func allZero(d string) bool {
	for i := 0; i < len(d); i++ {
		if d[i] != '0' {
			return false
		}
	}
	return true
}

// join concatenates the non-empty parts with single spaces.
func join(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
