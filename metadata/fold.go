package metadata

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips Vietnamese diacritics. Every input rune
// maps to exactly one output rune, so rune offsets into the folded text
// line up with rune offsets into s. The input must be NFC-normalized
// for that alignment to hold.
func Fold(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		sb.WriteRune(foldRune(r))
	}
	return sb.String()
}

// foldRune lowercases r and strips its combining marks by taking the
// first rune of its canonical decomposition. Đ carries a stroke rather
// than a combining mark and has no decomposition, so it is mapped
// directly.
func foldRune(r rune) rune {
	r = unicode.ToLower(r)
	if r < 0x80 {
		return r
	}
	if r == 'đ' {
		return 'd'
	}

	decomposed := norm.NFD.String(string(r))
	base, _ := utf8.DecodeRuneInString(decomposed)
	if base == utf8.RuneError {
		return r
	}
	return base
}
