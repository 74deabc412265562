package roman

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		token string
		want  int
	}{
		{"i", 1},
		{"iii", 3},
		{"iv", 4},
		{"v", 5},
		{"ix", 9},
		{"x", 10},
		{"xiv", 14},
		{"xl", 40},
		{"lxxvii", 77},
		{"xc", 90},
		{"cd", 400},
		{"dccc", 800},
		{"cm", 900},
		{"mcmxcix", 1999},
		{"mmxxvi", 2026},
		{"mmm", 3000},
		// Case-insensitive.
		{"XIV", 14},
		{"McMxCiX", 1999},
	}

	for _, tt := range tests {
		if got := Decode(tt.token); got != tt.want {
			t.Errorf("Decode(%q) = %d, want %d", tt.token, got, tt.want)
		}
	}
}

func TestReplaceAll(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"rocky v", "rocky 5"},
		{"henry viii", "henry 8"},
		{"chapter xiv ends", "chapter 14 ends"},
		{"x marks the spot", "10 marks the spot"},
		{"world war ii", "world war 2"},

		// Tokens that only partially fit the grammar stay untouched.
		{"iiii", "iiii"},
		{"vx", "vx"},
		{"mixer", "mixer"},
		{"civil", "civil"},
		{"dividend", "dividend"},

		// "mix" happens to be a well-formed numeral (M IX).
		{"mix", "1009"},

		// Accented or numeric characters keep a word from matching; the
		// word is never substituted in part.
		{"frau müller", "frau müller"},
		{"xiv2", "xiv2"},

		{"", ""},
		{"  double  spaced  ", "  double  spaced  "},
		{"no numerals here", "no numerals here"},
	}

	for _, tt := range tests {
		if got := ReplaceAll(tt.in); got != tt.want {
			t.Errorf("ReplaceAll(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPatternAnchored(t *testing.T) {
	// The grammar must accept only whole well-formed tokens.
	matching := []string{"i", "xiv", "mcmxcix", "MMXXVI", "dcclxxvii"}
	for _, s := range matching {
		if !Pattern.MatchString(s) {
			t.Errorf("Pattern.MatchString(%q) = false, want true", s)
		}
	}
	rejected := []string{"maximal", "excise", "myth", "livid", "iiii", "vx", "lc", "müller", "xiv "}
	for _, s := range rejected {
		if Pattern.MatchString(s) {
			t.Errorf("Pattern.MatchString(%q) = true, want false", s)
		}
	}
}
