package database

import (
	"database/sql"
	"fmt"

	"github.com/sjlee-dev/feedlens/internal/model"
)

// InsertRecord creates a personal record and returns its ID. The rating is
// validated here, at the ingestion boundary; out-of-range values are
// rejected before they reach storage or the aggregator.
func (db *DB) InsertRecord(r model.PersonalRecord) (int64, error) {
	if r.Rating < 1 || r.Rating > 5 {
		return 0, fmt.Errorf("rating %d outside 1..5", r.Rating)
	}

	result, err := db.conn.Exec(
		`INSERT INTO personal_records (type, title, category, rating, note, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.Type, r.Title, r.Category, r.Rating, r.Note, formatTime(r.RecordedAt),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetAllRecords returns every personal record, most recent first.
func (db *DB) GetAllRecords() ([]model.PersonalRecord, error) {
	return db.queryRecords(
		`SELECT id, type, title, category, rating, note, recorded_at
		FROM personal_records ORDER BY recorded_at DESC, id DESC`)
}

// GetRecordsByType returns records of one type, most recent first.
func (db *DB) GetRecordsByType(recordType string) ([]model.PersonalRecord, error) {
	return db.queryRecords(
		`SELECT id, type, title, category, rating, note, recorded_at
		FROM personal_records WHERE type = ? ORDER BY recorded_at DESC, id DESC`, recordType)
}

// GetRecord returns a single record by ID, or nil if absent.
func (db *DB) GetRecord(recordID int64) (*model.PersonalRecord, error) {
	row := db.conn.QueryRow(
		`SELECT id, type, title, category, rating, note, recorded_at
		FROM personal_records WHERE id = ?`, recordID,
	)
	var r model.PersonalRecord
	var recorded string
	if err := row.Scan(&r.ID, &r.Type, &r.Title, &r.Category, &r.Rating, &r.Note, &recorded); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	r.RecordedAt = parseTime(recorded)
	return &r, nil
}

// DeleteRecord removes a record. Deletion only happens on explicit user
// action; nothing in the analysis engine mutates records.
func (db *DB) DeleteRecord(recordID int64) error {
	_, err := db.conn.Exec("DELETE FROM personal_records WHERE id = ?", recordID)
	return err
}

// CountRecordsInMonth returns how many records were recorded in a month
// given as "YYYY-MM".
func (db *DB) CountRecordsInMonth(month string) (int, error) {
	var count int
	err := db.conn.QueryRow(
		`SELECT COUNT(*) FROM personal_records WHERE recorded_at LIKE ? || '%'`, month,
	).Scan(&count)
	return count, err
}

func (db *DB) queryRecords(query string, args ...any) ([]model.PersonalRecord, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.PersonalRecord
	for rows.Next() {
		var r model.PersonalRecord
		var recorded string
		if err := rows.Scan(&r.ID, &r.Type, &r.Title, &r.Category, &r.Rating, &r.Note, &recorded); err != nil {
			return nil, err
		}
		r.RecordedAt = parseTime(recorded)
		records = append(records, r)
	}
	return records, rows.Err()
}
