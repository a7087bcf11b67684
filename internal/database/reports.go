package database

import (
	"database/sql"

	"github.com/sjlee-dev/feedlens/internal/model"
)

// StoredReport is a rendered report kept for the web viewer.
type StoredReport struct {
	ID           int64
	Kind         model.ReportKind
	Title        string
	BodyMarkdown string
	GeneratedAt  *string
}

// InsertStoredReport saves a rendered report and returns its ID.
func (db *DB) InsertStoredReport(kind model.ReportKind, title, bodyMarkdown string) (int64, error) {
	result, err := db.conn.Exec(
		`INSERT INTO reports (kind, title, body_markdown) VALUES (?, ?, ?)`,
		string(kind), title, bodyMarkdown,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetStoredReport returns a report by ID, or nil if absent.
func (db *DB) GetStoredReport(reportID int64) (*StoredReport, error) {
	row := db.conn.QueryRow(
		`SELECT id, kind, title, body_markdown, generated_at FROM reports WHERE id = ?`, reportID,
	)
	var r StoredReport
	var kind string
	if err := row.Scan(&r.ID, &kind, &r.Title, &r.BodyMarkdown, &r.GeneratedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	r.Kind = model.ReportKind(kind)
	return &r, nil
}

// GetAllStoredReports returns all reports, most recent first.
func (db *DB) GetAllStoredReports() ([]StoredReport, error) {
	rows, err := db.conn.Query(
		`SELECT id, kind, title, body_markdown, generated_at FROM reports ORDER BY id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []StoredReport
	for rows.Next() {
		var r StoredReport
		var kind string
		if err := rows.Scan(&r.ID, &kind, &r.Title, &r.BodyMarkdown, &r.GeneratedAt); err != nil {
			return nil, err
		}
		r.Kind = model.ReportKind(kind)
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// Stats contains aggregate database statistics.
type Stats struct {
	FeedbackItems      int
	ClassifiedFeedback int
	PersonalRecords    int
	Reports            int
}

// GetStats returns aggregate database statistics.
func (db *DB) GetStats() (*Stats, error) {
	s := &Stats{}

	queries := []struct {
		sql  string
		dest *int
	}{
		{"SELECT COUNT(*) FROM feedback_items", &s.FeedbackItems},
		{"SELECT COUNT(*) FROM feedback_items WHERE sentiment != ''", &s.ClassifiedFeedback},
		{"SELECT COUNT(*) FROM personal_records", &s.PersonalRecords},
		{"SELECT COUNT(*) FROM reports", &s.Reports},
	}

	for _, q := range queries {
		if err := db.conn.QueryRow(q.sql).Scan(q.dest); err != nil {
			return nil, err
		}
	}

	return s, nil
}
