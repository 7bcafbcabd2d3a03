package fieldreg

import (
	"strings"
	"unicode"
)

// toFieldName converts a suggested name into a valid unexported Go field
// name using ASCII-aware rules. We keep this implementation local so we
// can aggressively strip punctuation (e.g. pointers, generic suffixes)
// that can show up when suggestions are derived from type or method
// names; leaving those characters in would produce identifiers the
// generated file cannot compile.
func toFieldName(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(runes))

	wordBreak := false
	for _, r := range runes {
		switch {
		case unicode.IsLetter(r):
			if b.Len() == 0 {
				b.WriteRune(unicode.ToLower(r))
			} else if wordBreak {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(r)
			}
			wordBreak = false

		case unicode.IsDigit(r):
			if b.Len() > 0 {
				b.WriteRune(r)
			}
			wordBreak = false

		default:
			// Underscores, dashes, spaces, and any stray punctuation all
			// act as word breaks and are dropped from the output.
			wordBreak = b.Len() > 0
		}
	}

	return b.String()
}
