package model

import "time"

// Sentiment is the categorical label assigned to a feedback text.
// The zero value means the item has not been classified yet.
type Sentiment string

const (
	SentimentUnset    Sentiment = ""
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Label returns the display form of the sentiment ("Positive", "Negative", ...).
func (s Sentiment) Label() string {
	switch s {
	case SentimentPositive:
		return "Positive"
	case SentimentNegative:
		return "Negative"
	case SentimentNeutral:
		return "Neutral"
	}
	return "Unclassified"
}

// FeedbackItem is one ingested feedback text. Sentiment is assigned exactly
// once by the classifier at ingestion and never changed afterward.
type FeedbackItem struct {
	ID          string
	Text        string
	Source      *string
	Sentiment   Sentiment
	SubmittedAt time.Time
}

// PersonalRecord is a user-entered activity record (reading, hobby,
// exercise, study, ...). Rating is validated to 1..5 at the ingestion
// boundary.
type PersonalRecord struct {
	ID         int64
	Type       string
	Title      string
	Category   string
	Rating     int
	Note       string
	RecordedAt time.Time
}

// KeywordHit is a ranked keyword with its corpus-wide occurrence count.
// Derived per analysis run, never persisted.
type KeywordHit struct {
	Term  string
	Count int
}

// AggregateBucket is a group of items sharing one grouping-dimension value,
// plus derived statistics. MeanRating is nil when the dimension makes the
// mean degenerate (grouping by rating) or when no ratings contribute.
// Sentiments is nil for record buckets.
type AggregateBucket struct {
	Key        string
	Count      int
	MeanRating *float64
	Sentiments map[Sentiment]int
}

// Insight is a single ranked natural-language observation.
type Insight struct {
	Statement string
	Rank      int
}

// ReportKind selects which data sources a report covers.
type ReportKind string

const (
	ReportFeedback ReportKind = "feedback"
	ReportRecords  ReportKind = "records"
	ReportCombined ReportKind = "combined"
)

// Table is a rendered aggregate table inside a report section.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Section pairs a heading with either prose lines or a table.
type Section struct {
	Heading string
	Prose   []string
	Table   *Table
}

// ReportDocument is the renderer-agnostic report structure. External
// consumers (markdown writer, web viewer) traverse it; it performs no I/O.
type ReportDocument struct {
	Title    string
	Kind     ReportKind
	Sections []Section
}
