package insight

import (
	"reflect"
	"strings"
	"testing"

	"github.com/sjlee-dev/feedlens/internal/model"
)

func mean(v float64) *float64 { return &v }

func TestSummarizePriorityOrder(t *testing.T) {
	s := NewSummarizer(0)
	in := Input{
		SentimentBuckets: []model.AggregateBucket{
			{Key: "negative", Count: 42},
			{Key: "positive", Count: 38},
			{Key: "neutral", Count: 20},
		},
		Keywords: []model.KeywordHit{{Term: "delivery", Count: 15}},
		CategoryBuckets: []model.AggregateBucket{
			{Key: "novel", Count: 4, MeanRating: mean(4.5)},
			{Key: "exam", Count: 2, MeanRating: mean(2.0)},
		},
		TimeBuckets: []model.AggregateBucket{
			{Key: "2026-01", Count: 10},
			{Key: "2026-02", Count: 15},
		},
	}

	insights := s.Summarize(in)
	if len(insights) != 5 {
		t.Fatalf("expected 5 insights, got %d: %v", len(insights), insights)
	}

	wantPrefixes := []string{
		"Most feedback is Negative (42%)",
		`Most frequent topic: "delivery" (15 mentions)`,
		"Highest rated category: novel (4.5 average)",
		"Lowest rated category: exam (2.0 average)",
		"Feedback volume is increasing (10 to 15",
	}
	for i, want := range wantPrefixes {
		if !strings.HasPrefix(insights[i].Statement, want) {
			t.Errorf("insight %d = %q, want prefix %q", i, insights[i].Statement, want)
		}
		if insights[i].Rank != i+1 {
			t.Errorf("insight %d has rank %d", i, insights[i].Rank)
		}
	}
}

func TestSummarizeTrendDirections(t *testing.T) {
	s := NewSummarizer(0.05)
	cases := []struct {
		prev, last int
		want       string
	}{
		{10, 15, "increasing"},
		{15, 10, "decreasing"},
		{10, 10, "flat"},
		{100, 104, "flat"}, // 4% change is inside the threshold
	}
	for _, tc := range cases {
		in := Input{TimeBuckets: []model.AggregateBucket{
			{Key: "2026-01", Count: tc.prev},
			{Key: "2026-02", Count: tc.last},
		}}
		insights := s.Summarize(in)
		if len(insights) != 1 {
			t.Fatalf("expected 1 insight, got %v", insights)
		}
		if !strings.Contains(insights[0].Statement, tc.want) {
			t.Errorf("trend %d->%d = %q, want %q", tc.prev, tc.last, insights[0].Statement, tc.want)
		}
	}
}

func TestSummarizeTrendUsesTwoMostRecentBuckets(t *testing.T) {
	s := NewSummarizer(0)
	in := Input{TimeBuckets: []model.AggregateBucket{
		{Key: "2026-01", Count: 100},
		{Key: "2026-02", Count: 10},
		{Key: "2026-03", Count: 15},
	}}
	insights := s.Summarize(in)
	if len(insights) != 1 || !strings.Contains(insights[0].Statement, "increasing") {
		t.Errorf("expected increasing from the latest pair, got %v", insights)
	}
}

func TestSummarizeOmitsMissingInsightTypes(t *testing.T) {
	s := NewSummarizer(0)

	if insights := s.Summarize(Input{}); len(insights) != 0 {
		t.Errorf("expected no insights for empty input, got %v", insights)
	}

	// A single time bucket is not enough for a trend.
	in := Input{TimeBuckets: []model.AggregateBucket{{Key: "2026-01", Count: 10}}}
	if insights := s.Summarize(in); len(insights) != 0 {
		t.Errorf("expected no trend insight for one bucket, got %v", insights)
	}
}

func TestSummarizeSingleCategorySkipsLowest(t *testing.T) {
	s := NewSummarizer(0)
	in := Input{CategoryBuckets: []model.AggregateBucket{
		{Key: "novel", Count: 3, MeanRating: mean(4.0)},
	}}
	insights := s.Summarize(in)
	if len(insights) != 1 {
		t.Fatalf("expected only the highest-rated insight, got %v", insights)
	}
	if strings.Contains(insights[0].Statement, "Lowest") {
		t.Errorf("unexpected lowest-rated insight: %v", insights[0])
	}
}

func TestSummarizeIgnoresUnclassifiedSentiment(t *testing.T) {
	s := NewSummarizer(0)
	in := Input{SentimentBuckets: []model.AggregateBucket{
		{Key: "unspecified", Count: 90},
		{Key: "positive", Count: 10},
	}}
	insights := s.Summarize(in)
	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %v", insights)
	}
	if insights[0].Statement != "Most feedback is Positive (100%)" {
		t.Errorf("unexpected statement: %q", insights[0].Statement)
	}
}

func TestSummarizeDeterministic(t *testing.T) {
	s := NewSummarizer(0)
	in := Input{
		SentimentBuckets: []model.AggregateBucket{{Key: "positive", Count: 3}},
		Keywords:         []model.KeywordHit{{Term: "delivery", Count: 2}},
	}
	if !reflect.DeepEqual(s.Summarize(in), s.Summarize(in)) {
		t.Error("summarize is not deterministic for identical input")
	}
}
