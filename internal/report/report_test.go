package report

import (
	"strings"
	"testing"

	"github.com/sjlee-dev/feedlens/internal/model"
)

func mean(v float64) *float64 { return &v }

func sampleInput() Input {
	return Input{
		Insights: []model.Insight{
			{Statement: "Most feedback is Positive (60%)", Rank: 1},
			{Statement: `Most frequent topic: "delivery" (4 mentions)`, Rank: 2},
		},
		SentimentBuckets: []model.AggregateBucket{
			{Key: "positive", Count: 6},
			{Key: "negative", Count: 4},
		},
		TimeBuckets: []model.AggregateBucket{
			{Key: "2026-01", Count: 5, Sentiments: map[model.Sentiment]int{model.SentimentPositive: 5}},
			{Key: "2026-02", Count: 5, Sentiments: map[model.Sentiment]int{model.SentimentNegative: 5}},
		},
		TypeBuckets: []model.AggregateBucket{
			{Key: "reading", Count: 3, MeanRating: mean(4.3)},
		},
		CategoryBuckets: []model.AggregateBucket{
			{Key: "novel", Count: 2, MeanRating: mean(4.5)},
		},
		RatingBuckets: []model.AggregateBucket{
			{Key: "4", Count: 1},
			{Key: "5", Count: 2},
		},
		Keywords: []model.KeywordHit{{Term: "delivery", Count: 4}},
	}
}

func headings(doc model.ReportDocument) []string {
	out := make([]string, len(doc.Sections))
	for i, s := range doc.Sections {
		out[i] = s.Heading
	}
	return out
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestAssembleCombinedIncludesBothSources(t *testing.T) {
	doc := Assemble(sampleInput(), model.ReportCombined)
	hs := headings(doc)

	for _, want := range []string{
		"Highlights", "Sentiment Breakdown", "Top Keywords",
		"Feedback Over Time", "Records by Type", "Records by Category",
		"Rating Distribution",
	} {
		if !contains(hs, want) {
			t.Errorf("combined report missing section %q (got %v)", want, hs)
		}
	}
	if doc.Title != "Combined Analysis Report" {
		t.Errorf("unexpected title %q", doc.Title)
	}
}

func TestAssembleRecordsKindExcludesFeedbackSections(t *testing.T) {
	// Feedback buckets are supplied but must not leak into a records report.
	doc := Assemble(sampleInput(), model.ReportRecords)
	hs := headings(doc)

	for _, banned := range []string{"Sentiment Breakdown", "Top Keywords", "Feedback Over Time"} {
		if contains(hs, banned) {
			t.Errorf("records report must not include %q", banned)
		}
	}
	if !contains(hs, "Records by Type") || !contains(hs, "Rating Distribution") {
		t.Errorf("records report missing record sections: %v", hs)
	}
}

func TestAssembleFeedbackKindExcludesRecordSections(t *testing.T) {
	doc := Assemble(sampleInput(), model.ReportFeedback)
	hs := headings(doc)
	for _, banned := range []string{"Records by Type", "Records by Category", "Rating Distribution"} {
		if contains(hs, banned) {
			t.Errorf("feedback report must not include %q", banned)
		}
	}
}

func TestAssembleEmptyInput(t *testing.T) {
	doc := Assemble(Input{}, model.ReportCombined)
	if len(doc.Sections) != 0 {
		t.Errorf("expected no sections for empty input, got %v", headings(doc))
	}
	if doc.Title == "" {
		t.Error("expected a title even for an empty report")
	}
}

func TestRenderMarkdown(t *testing.T) {
	doc := Assemble(sampleInput(), model.ReportCombined)
	md := RenderMarkdown(doc)

	if !strings.HasPrefix(md, "# Combined Analysis Report\n") {
		t.Errorf("markdown missing title heading:\n%s", md)
	}
	if !strings.Contains(md, "## Sentiment Breakdown") {
		t.Error("markdown missing section heading")
	}
	if !strings.Contains(md, "| Sentiment | Count |") {
		t.Error("markdown missing table header")
	}
	if !strings.Contains(md, "| Positive | 6 |") {
		t.Error("markdown missing table row")
	}
	if !strings.Contains(md, "- Most feedback is Positive (60%)") {
		t.Error("markdown missing prose line")
	}
}

func TestRenderMarkdownEscapesCells(t *testing.T) {
	doc := model.ReportDocument{
		Title: "T",
		Sections: []model.Section{{
			Heading: "S",
			Table: &model.Table{
				Columns: []string{"K", "V"},
				Rows:    [][]string{{"a|b", "line\nbreak"}},
			},
		}},
	}
	md := RenderMarkdown(doc)
	if !strings.Contains(md, `a\|b`) {
		t.Error("pipe not escaped in table cell")
	}
	if strings.Contains(md, "line\nbreak") {
		t.Error("newline not flattened in table cell")
	}
}

func TestAssembleAndRenderIdempotent(t *testing.T) {
	in := sampleInput()
	first := RenderMarkdown(Assemble(in, model.ReportCombined))
	second := RenderMarkdown(Assemble(in, model.ReportCombined))
	if first != second {
		t.Error("re-assembling unchanged input did not produce byte-identical markdown")
	}
}
