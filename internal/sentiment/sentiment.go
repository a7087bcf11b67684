// Package sentiment performs rule-based sentiment classification of feedback
// text against a fixed lexicon.
//
// The classifier tokenizes the input, counts positive and negative marker
// matches, and returns the category with the higher count. Equal counts,
// including zero matches on both sides, resolve to Neutral. Classification is
// a pure function: empty or non-text input yields Neutral, never an error.
package sentiment

import (
	"github.com/sjlee-dev/feedlens/internal/lexicon"
	"github.com/sjlee-dev/feedlens/internal/model"
	"github.com/sjlee-dev/feedlens/internal/tokenize"
)

// Classifier assigns a sentiment category to one text. The lexicon scorer is
// the only implementation today; a statistical model can substitute without
// touching the aggregation or reporting stages.
type Classifier interface {
	Classify(text string) model.Sentiment
}

// LexiconClassifier scores text by exact token matches against a Lexicon.
type LexiconClassifier struct {
	lex *lexicon.Lexicon
}

// NewLexiconClassifier creates a classifier over the given lexicon.
func NewLexiconClassifier(lex *lexicon.Lexicon) *LexiconClassifier {
	return &LexiconClassifier{lex: lex}
}

// Classify tokenizes text and counts lexicon matches. No partial credit for
// near-matches; exact token equality only.
func (c *LexiconClassifier) Classify(text string) model.Sentiment {
	var positive, negative int
	for _, word := range tokenize.Words(text) {
		if c.lex.IsPositive(word) {
			positive++
		}
		if c.lex.IsNegative(word) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return model.SentimentPositive
	case negative > positive:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}
