// Package insight turns aggregate statistics into a small, ranked set of
// natural-language observations.
//
// Insights are produced in a fixed priority order: dominant sentiment, top
// keyword, highest and lowest rated category, trend direction. There is no
// learned scoring; identical aggregate input always yields identical output.
// Absence of data for an insight type silently omits that insight.
package insight

import (
	"fmt"

	"github.com/sjlee-dev/feedlens/internal/aggregate"
	"github.com/sjlee-dev/feedlens/internal/model"
)

// DefaultTrendThreshold is the relative change below which a trend counts
// as flat.
const DefaultTrendThreshold = 0.05

// Input carries the aggregate results one analysis run produced. Any field
// may be empty; the corresponding insights are omitted.
type Input struct {
	SentimentBuckets []model.AggregateBucket // feedback grouped by sentiment
	CategoryBuckets  []model.AggregateBucket // records grouped by category
	TimeBuckets      []model.AggregateBucket // feedback grouped by time, chronological
	Keywords         []model.KeywordHit
}

// Summarizer derives ranked insights from aggregates.
type Summarizer struct {
	trendThreshold float64
}

// NewSummarizer creates a summarizer. threshold <= 0 selects the default.
func NewSummarizer(threshold float64) *Summarizer {
	if threshold <= 0 {
		threshold = DefaultTrendThreshold
	}
	return &Summarizer{trendThreshold: threshold}
}

// Summarize produces the ranked insight list for in.
func (s *Summarizer) Summarize(in Input) []model.Insight {
	var insights []model.Insight
	add := func(statement string) {
		insights = append(insights, model.Insight{
			Statement: statement,
			Rank:      len(insights) + 1,
		})
	}

	if stmt := dominantSentiment(in.SentimentBuckets); stmt != "" {
		add(stmt)
	}
	if stmt := topKeyword(in.Keywords); stmt != "" {
		add(stmt)
	}
	for _, stmt := range ratingExtremes(in.CategoryBuckets) {
		add(stmt)
	}
	if stmt := s.trend(in.TimeBuckets); stmt != "" {
		add(stmt)
	}
	return insights
}

// dominantSentiment phrases the highest-count sentiment bucket as a share of
// all classified feedback.
func dominantSentiment(buckets []model.AggregateBucket) string {
	total := 0
	var top *model.AggregateBucket
	for i := range buckets {
		b := &buckets[i]
		if b.Key == aggregate.UnspecifiedKey {
			continue
		}
		total += b.Count
		if top == nil || b.Count > top.Count {
			top = b
		}
	}
	if top == nil || total == 0 {
		return ""
	}
	share := float64(top.Count) / float64(total) * 100
	return fmt.Sprintf("Most feedback is %s (%.0f%%)", model.Sentiment(top.Key).Label(), share)
}

func topKeyword(hits []model.KeywordHit) string {
	if len(hits) == 0 {
		return ""
	}
	top := hits[0]
	noun := "mentions"
	if top.Count == 1 {
		noun = "mention"
	}
	return fmt.Sprintf("Most frequent topic: %q (%d %s)", top.Term, top.Count, noun)
}

// ratingExtremes names the best and worst rated category. With a single
// category only the highest is reported.
func ratingExtremes(buckets []model.AggregateBucket) []string {
	var rated []model.AggregateBucket
	for _, b := range buckets {
		if b.MeanRating != nil {
			rated = append(rated, b)
		}
	}
	if len(rated) == 0 {
		return nil
	}

	best, worst := rated[0], rated[0]
	for _, b := range rated[1:] {
		if *b.MeanRating > *best.MeanRating {
			best = b
		}
		if *b.MeanRating < *worst.MeanRating {
			worst = b
		}
	}

	out := []string{fmt.Sprintf("Highest rated category: %s (%.1f average)", best.Key, *best.MeanRating)}
	if worst.Key != best.Key {
		out = append(out, fmt.Sprintf("Lowest rated category: %s (%.1f average)", worst.Key, *worst.MeanRating))
	}
	return out
}

// trend compares the two most recent time buckets against the relative
// change threshold. Requires at least two buckets.
func (s *Summarizer) trend(buckets []model.AggregateBucket) string {
	if len(buckets) < 2 {
		return ""
	}
	prev := buckets[len(buckets)-2]
	last := buckets[len(buckets)-1]
	if prev.Count == 0 {
		return ""
	}

	change := (float64(last.Count) - float64(prev.Count)) / float64(prev.Count)
	switch {
	case change > s.trendThreshold:
		return fmt.Sprintf("Feedback volume is increasing (%d to %d in the latest period)", prev.Count, last.Count)
	case change < -s.trendThreshold:
		return fmt.Sprintf("Feedback volume is decreasing (%d to %d in the latest period)", prev.Count, last.Count)
	default:
		return fmt.Sprintf("Feedback volume is flat (%d in the latest period)", last.Count)
	}
}
