// Package ingest reads already-tabular feedback rows from CSV files into
// storage. Each accepted row is classified exactly once on the way in, so
// every persisted feedback item carries a sentiment before any aggregation
// sees it.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sjlee-dev/feedlens/internal/database"
	"github.com/sjlee-dev/feedlens/internal/model"
	"github.com/sjlee-dev/feedlens/internal/sentiment"
)

// Result holds the outcome of one import run.
type Result struct {
	TotalRows  int
	Imported   int
	Skipped    int
	Sentiments map[model.Sentiment]int
}

// Importer reads feedback CSV files into the database.
type Importer struct {
	db         *database.DB
	classifier sentiment.Classifier
}

// NewImporter creates an importer that classifies rows with classifier.
func NewImporter(db *database.DB, classifier sentiment.Classifier) *Importer {
	return &Importer{db: db, classifier: classifier}
}

// ImportFile imports one CSV file. The first row must be a header; a "text"
// column is required, "date" (YYYY-MM-DD) and "source" are optional. Rows
// with empty text are skipped, not errored.
func (imp *Importer) ImportFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	result, err := imp.importCSV(f, time.Now())
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", path, err)
	}
	return result, nil
}

func (imp *Importer) importCSV(r io.Reader, now time.Time) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	result := &Result{Sentiments: make(map[model.Sentiment]int)}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", result.TotalRows+2, err)
		}
		result.TotalRows++

		text := strings.TrimSpace(field(row, cols.text))
		if text == "" {
			result.Skipped++
			continue
		}

		submitted := now
		if raw := strings.TrimSpace(field(row, cols.date)); raw != "" {
			ts, err := parseDate(raw)
			if err != nil {
				log.Printf("row %d: unparseable date %q, using today", result.TotalRows+1, raw)
			} else {
				submitted = ts
			}
		}

		item := model.FeedbackItem{
			ID:          uuid.NewString(),
			Text:        text,
			Sentiment:   imp.classifier.Classify(text),
			SubmittedAt: submitted,
		}
		if source := strings.TrimSpace(field(row, cols.source)); source != "" {
			item.Source = &source
		}

		if err := imp.db.InsertFeedback(item); err != nil {
			return nil, fmt.Errorf("storing row %d: %w", result.TotalRows+1, err)
		}
		result.Imported++
		result.Sentiments[item.Sentiment]++
	}

	return result, nil
}

// columns holds header indices; -1 means the column is absent.
type columns struct {
	text, date, source int
}

func mapColumns(header []string) (columns, error) {
	cols := columns{text: -1, date: -1, source: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "text", "feedback", "comment":
			cols.text = i
		case "date", "submitted_at", "timestamp":
			cols.date = i
		case "source", "channel":
			cols.source = i
		}
	}
	if cols.text == -1 {
		return cols, fmt.Errorf("no text column found in header (want text, feedback, or comment)")
	}
	return cols, nil
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05", "2006/01/02"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}
