// Package report composes analysis results into a renderer-agnostic document
// and renders that document to markdown.
//
// Assemble builds the ordered section list; it performs no I/O and no
// format-specific rendering. RenderMarkdown is one consumer of the document;
// the web viewer is another.
package report

import (
	"fmt"

	"github.com/sjlee-dev/feedlens/internal/aggregate"
	"github.com/sjlee-dev/feedlens/internal/model"
)

// Input carries everything a report can draw from. Fields irrelevant to the
// requested kind are ignored.
type Input struct {
	Insights         []model.Insight
	SentimentBuckets []model.AggregateBucket
	TimeBuckets      []model.AggregateBucket
	TypeBuckets      []model.AggregateBucket
	CategoryBuckets  []model.AggregateBucket
	RatingBuckets    []model.AggregateBucket
	Keywords         []model.KeywordHit
}

// Assemble builds the report document for the given kind. Combined reports
// include both data sources; single-kind reports include only the relevant
// sections. Empty inputs produce a document without the corresponding
// sections rather than an error.
func Assemble(in Input, kind model.ReportKind) model.ReportDocument {
	doc := model.ReportDocument{Title: titleFor(kind), Kind: kind}

	if len(in.Insights) > 0 {
		doc.Sections = append(doc.Sections, model.Section{
			Heading: "Highlights",
			Prose:   insightProse(in.Insights),
		})
	}

	if kind == model.ReportFeedback || kind == model.ReportCombined {
		doc.Sections = append(doc.Sections, feedbackSections(in)...)
	}
	if kind == model.ReportRecords || kind == model.ReportCombined {
		doc.Sections = append(doc.Sections, recordSections(in)...)
	}
	return doc
}

func titleFor(kind model.ReportKind) string {
	switch kind {
	case model.ReportFeedback:
		return "Feedback Analysis Report"
	case model.ReportRecords:
		return "Personal Records Report"
	default:
		return "Combined Analysis Report"
	}
}

func insightProse(insights []model.Insight) []string {
	lines := make([]string, len(insights))
	for i, ins := range insights {
		lines[i] = ins.Statement
	}
	return lines
}

func feedbackSections(in Input) []model.Section {
	var sections []model.Section

	if len(in.SentimentBuckets) > 0 {
		t := &model.Table{Columns: []string{"Sentiment", "Count"}}
		for _, b := range in.SentimentBuckets {
			t.Rows = append(t.Rows, []string{sentimentLabel(b.Key), fmt.Sprintf("%d", b.Count)})
		}
		sections = append(sections, model.Section{Heading: "Sentiment Breakdown", Table: t})
	}

	if len(in.Keywords) > 0 {
		t := &model.Table{Columns: []string{"Keyword", "Mentions"}}
		for _, k := range in.Keywords {
			t.Rows = append(t.Rows, []string{k.Term, fmt.Sprintf("%d", k.Count)})
		}
		sections = append(sections, model.Section{Heading: "Top Keywords", Table: t})
	}

	if len(in.TimeBuckets) > 0 {
		t := &model.Table{Columns: []string{"Period", "Feedback", "Positive", "Negative", "Neutral"}}
		for _, b := range in.TimeBuckets {
			t.Rows = append(t.Rows, []string{
				b.Key,
				fmt.Sprintf("%d", b.Count),
				fmt.Sprintf("%d", b.Sentiments[model.SentimentPositive]),
				fmt.Sprintf("%d", b.Sentiments[model.SentimentNegative]),
				fmt.Sprintf("%d", b.Sentiments[model.SentimentNeutral]),
			})
		}
		sections = append(sections, model.Section{Heading: "Feedback Over Time", Table: t})
	}

	return sections
}

func recordSections(in Input) []model.Section {
	var sections []model.Section

	if len(in.TypeBuckets) > 0 {
		sections = append(sections, model.Section{
			Heading: "Records by Type",
			Table:   ratedTable("Type", in.TypeBuckets),
		})
	}
	if len(in.CategoryBuckets) > 0 {
		sections = append(sections, model.Section{
			Heading: "Records by Category",
			Table:   ratedTable("Category", in.CategoryBuckets),
		})
	}
	if len(in.RatingBuckets) > 0 {
		t := &model.Table{Columns: []string{"Rating", "Count"}}
		for _, b := range in.RatingBuckets {
			t.Rows = append(t.Rows, []string{b.Key, fmt.Sprintf("%d", b.Count)})
		}
		sections = append(sections, model.Section{Heading: "Rating Distribution", Table: t})
	}

	return sections
}

func ratedTable(keyColumn string, buckets []model.AggregateBucket) *model.Table {
	t := &model.Table{Columns: []string{keyColumn, "Count", "Avg Rating"}}
	for _, b := range buckets {
		avg := "-"
		if b.MeanRating != nil {
			avg = fmt.Sprintf("%.1f", *b.MeanRating)
		}
		t.Rows = append(t.Rows, []string{b.Key, fmt.Sprintf("%d", b.Count), avg})
	}
	return t
}

func sentimentLabel(key string) string {
	if key == aggregate.UnspecifiedKey {
		return "Unclassified"
	}
	return model.Sentiment(key).Label()
}
