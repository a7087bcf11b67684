// Package tokenize provides the shared normalization and word splitting used
// by both the sentiment classifier and the keyword extractor, so the two
// always see identical tokens for the same text.
package tokenize

import (
	"strings"
	"unicode"
)

// Normalize lower-cases a term and strips leading/trailing punctuation.
// Inner punctuation (apostrophes, hyphens) is preserved so contractions and
// compounds survive as single tokens.
func Normalize(term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	return strings.TrimFunc(term, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Words splits text into normalized unigram tokens. Splitting happens on
// whitespace and punctuation; empty tokens are dropped. Returns nil for
// text with no tokens.
func Words(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
		// Keep word-internal connectors; Normalize trims them at the edges.
		return r != '\'' && r != '-'
	})

	var words []string
	for _, f := range fields {
		if w := Normalize(f); w != "" {
			words = append(words, w)
		}
	}
	return words
}
