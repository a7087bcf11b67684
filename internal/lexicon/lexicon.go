// Package lexicon holds the fixed marker-term sets used for rule-based
// sentiment scoring. A Lexicon is built once at configuration time and never
// mutated during an analysis run.
package lexicon

import "github.com/sjlee-dev/feedlens/internal/tokenize"

// Lexicon is an immutable pair of positive and negative marker-term sets.
type Lexicon struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// New builds a lexicon from the built-in defaults plus any user-supplied
// additions. Terms are normalized before insertion; a term present in both
// lists stays in both (the classifier counts it on each side, so it cancels).
func New(extraPositive, extraNegative []string) *Lexicon {
	l := &Lexicon{
		positive: make(map[string]struct{}, len(defaultPositive)+len(extraPositive)),
		negative: make(map[string]struct{}, len(defaultNegative)+len(extraNegative)),
	}
	for _, t := range defaultPositive {
		l.positive[t] = struct{}{}
	}
	for _, t := range defaultNegative {
		l.negative[t] = struct{}{}
	}
	for _, t := range extraPositive {
		if n := tokenize.Normalize(t); n != "" {
			l.positive[n] = struct{}{}
		}
	}
	for _, t := range extraNegative {
		if n := tokenize.Normalize(t); n != "" {
			l.negative[n] = struct{}{}
		}
	}
	return l
}

// Custom builds a lexicon from explicit term lists only, without the
// built-in defaults. Used by tests and callers that bring their own lists.
func Custom(positive, negative []string) *Lexicon {
	l := &Lexicon{
		positive: make(map[string]struct{}, len(positive)),
		negative: make(map[string]struct{}, len(negative)),
	}
	for _, t := range positive {
		if n := tokenize.Normalize(t); n != "" {
			l.positive[n] = struct{}{}
		}
	}
	for _, t := range negative {
		if n := tokenize.Normalize(t); n != "" {
			l.negative[n] = struct{}{}
		}
	}
	return l
}

// IsPositive reports whether the normalized term is a positive marker.
func (l *Lexicon) IsPositive(term string) bool {
	_, ok := l.positive[tokenize.Normalize(term)]
	return ok
}

// IsNegative reports whether the normalized term is a negative marker.
func (l *Lexicon) IsNegative(term string) bool {
	_, ok := l.negative[tokenize.Normalize(term)]
	return ok
}

// Size returns the number of positive and negative terms.
func (l *Lexicon) Size() (positive, negative int) {
	return len(l.positive), len(l.negative)
}
