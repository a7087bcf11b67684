// Package keywords extracts the most frequent topic terms from a collection
// of feedback texts.
//
// The pipeline runs tokenize -> stop-term filter -> minimum-length filter,
// then accumulates one frequency map across the whole input collection and
// returns the top terms by count. Ties break by first occurrence in the
// input, so output is deterministic for identical input.
package keywords

import (
	"slices"
	"unicode/utf8"

	"github.com/sjlee-dev/feedlens/internal/model"
	"github.com/sjlee-dev/feedlens/internal/tokenize"
)

const (
	// DefaultTopN is the number of keywords returned when the caller does
	// not specify a limit.
	DefaultTopN = 10
	// DefaultMinTokenLen is the minimum token length (in runes) for a term
	// to qualify as a keyword candidate.
	DefaultMinTokenLen = 2
)

// Extractor ranks terms by corpus-wide frequency.
type Extractor struct {
	stopTerms   map[string]struct{}
	minTokenLen int
}

// NewExtractor creates an extractor using the built-in stop-term list plus
// any additions. minTokenLen <= 0 selects the default.
func NewExtractor(extraStopTerms []string, minTokenLen int) *Extractor {
	if minTokenLen <= 0 {
		minTokenLen = DefaultMinTokenLen
	}
	stop := make(map[string]struct{}, len(defaultStopTerms)+len(extraStopTerms))
	for _, t := range defaultStopTerms {
		stop[t] = struct{}{}
	}
	for _, t := range extraStopTerms {
		if n := tokenize.Normalize(t); n != "" {
			stop[n] = struct{}{}
		}
	}
	return &Extractor{stopTerms: stop, minTokenLen: minTokenLen}
}

// Extract returns the topN most frequent qualifying terms across all texts,
// sorted by count descending with first-occurrence tie-breaking. topN <= 0
// selects the default. An empty input collection yields an empty result.
func (e *Extractor) Extract(texts []string, topN int) []model.KeywordHit {
	if topN <= 0 {
		topN = DefaultTopN
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, text := range texts {
		for _, word := range tokenize.Words(text) {
			if utf8.RuneCountInString(word) < e.minTokenLen {
				continue
			}
			if _, stop := e.stopTerms[word]; stop {
				continue
			}
			if _, seen := counts[word]; !seen {
				firstSeen[word] = order
				order++
			}
			counts[word]++
		}
	}

	hits := make([]model.KeywordHit, 0, len(counts))
	for term, count := range counts {
		hits = append(hits, model.KeywordHit{Term: term, Count: count})
	}

	slices.SortFunc(hits, func(a, b model.KeywordHit) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return firstSeen[a.Term] - firstSeen[b.Term]
	})

	if len(hits) > topN {
		hits = hits[:topN]
	}
	return hits
}
