package database

import (
	"database/sql"
	"fmt"

	"github.com/sjlee-dev/feedlens/internal/model"
)

// InsertFeedback inserts one feedback item. The item's sentiment is whatever
// the classifier assigned at ingestion; it is never rewritten afterward.
func (db *DB) InsertFeedback(f model.FeedbackItem) error {
	_, err := db.conn.Exec(
		`INSERT INTO feedback_items (id, text, source, sentiment, submitted_at)
		VALUES (?, ?, ?, ?, ?)`,
		f.ID, f.Text, f.Source, string(f.Sentiment), formatTime(f.SubmittedAt),
	)
	return err
}

// GetAllFeedback returns every feedback item ordered by submission time.
func (db *DB) GetAllFeedback() ([]model.FeedbackItem, error) {
	rows, err := db.conn.Query(
		`SELECT id, text, source, sentiment, submitted_at
		FROM feedback_items ORDER BY submitted_at ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFeedback(rows)
}

// GetUnclassifiedFeedback returns items whose sentiment was never assigned
// (rows written outside the import path).
func (db *DB) GetUnclassifiedFeedback() ([]model.FeedbackItem, error) {
	rows, err := db.conn.Query(
		`SELECT id, text, source, sentiment, submitted_at
		FROM feedback_items WHERE sentiment = '' ORDER BY submitted_at ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFeedback(rows)
}

// SetFeedbackSentiment assigns a sentiment to a still-unclassified item.
// Classified items are left untouched; sentiment is assigned exactly once.
func (db *DB) SetFeedbackSentiment(id string, s model.Sentiment) error {
	result, err := db.conn.Exec(
		`UPDATE feedback_items SET sentiment = ? WHERE id = ? AND sentiment = ''`,
		string(s), id,
	)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("feedback %s not found or already classified", id)
	}
	return nil
}

// GetFeedback returns a single feedback item by ID, or nil if absent.
func (db *DB) GetFeedback(id string) (*model.FeedbackItem, error) {
	row := db.conn.QueryRow(
		`SELECT id, text, source, sentiment, submitted_at FROM feedback_items WHERE id = ?`, id,
	)
	var f model.FeedbackItem
	var sentiment, submitted string
	if err := row.Scan(&f.ID, &f.Text, &f.Source, &sentiment, &submitted); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	f.Sentiment = model.Sentiment(sentiment)
	f.SubmittedAt = parseTime(submitted)
	return &f, nil
}

func scanFeedback(rows *sql.Rows) ([]model.FeedbackItem, error) {
	var items []model.FeedbackItem
	for rows.Next() {
		var f model.FeedbackItem
		var sentiment, submitted string
		if err := rows.Scan(&f.ID, &f.Text, &f.Source, &sentiment, &submitted); err != nil {
			return nil, err
		}
		f.Sentiment = model.Sentiment(sentiment)
		f.SubmittedAt = parseTime(submitted)
		items = append(items, f)
	}
	return items, rows.Err()
}
