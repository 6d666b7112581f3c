// Package textnorm cleans up text pulled out of PDF content streams before it
// is placed in table cells.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalize folds compatibility forms (ligatures, full-width letters such as
// "Ｘ") to their canonical equivalents, replaces control characters and
// non-breaking spaces with plain spaces and collapses runs of whitespace.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = width.Fold.String(norm.NFKC.String(s))

	var sb strings.Builder
	sb.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			space = true
			continue
		}
		if r == unicode.ReplacementChar {
			continue
		}
		if space && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		space = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// IsBlank reports whether s holds nothing but whitespace after normalization.
func IsBlank(s string) bool {
	return Normalize(s) == ""
}
