package alphabetical

import (
	"strings"
	"testing"
)

// FuzzNormalize checks that the pipeline never panics, stays deterministic,
// and only ever emits runes from the working charset.
func FuzzNormalize(f *testing.F) {
	f.Add("The Great Gatsby")
	f.Add("img10.png")
	f.Add("1984")
	f.Add("MCMXCIX and all that")
	f.Add("Café Müller (live) 2001")
	f.Add("0000 007 1000000000000000000")
	f.Add("a")
	f.Add("")
	f.Add("\x80\xfe invalid utf8")

	f.Fuzz(func(t *testing.T, s string) {
		for _, o := range []Options{BookIndex, Filename} {
			key := Normalize(o, s)
			if again := Normalize(o, s); again != key {
				t.Fatalf("Normalize(%q) unstable: %q then %q", s, key, again)
			}
			if CompareKeys(o, key, key) != 0 {
				t.Fatalf("key %q does not compare equal to itself", key)
			}
			if strings.ContainsRune(key, ' ') {
				t.Fatalf("Normalize(%q) = %q: key contains a space", s, key)
			}
			for _, r := range key {
				if !keyRune(r) {
					t.Fatalf("Normalize(%q) = %q: unexpected rune %q", s, key, r)
				}
			}
		}
	})
}

// keyRune reports runes a canonical key may contain: the folded charset
// minus the space, plus the uppercase letters used for word boundaries and
// leading-digit buckets.
func keyRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r >= 'A' && r <= 'I':
		return true
	case r >= 0x00C0 && r <= 0x00FF:
		return r != 0x00D7 && r != 0x00F7
	}
	return false
}
