package database

import "database/sql"

// Migration represents a single schema migration step.
type Migration struct {
	Version     int
	Description string
	Up          func(tx *sql.Tx) error
}

// migrations is the ordered list of all schema migrations.
// Append new migrations to the end with incrementing Version numbers.
var migrations = []Migration{
	{
		Version:     1,
		Description: "initial schema",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS feedback_items (
    id TEXT PRIMARY KEY,
    text TEXT NOT NULL,
    source TEXT,
    sentiment TEXT NOT NULL DEFAULT '' CHECK(sentiment IN ('', 'positive', 'negative', 'neutral')),
    submitted_at TEXT NOT NULL,
    created_at TEXT DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS personal_records (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    type TEXT NOT NULL,
    title TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    rating INTEGER NOT NULL CHECK(rating >= 1 AND rating <= 5),
    note TEXT NOT NULL DEFAULT '',
    recorded_at TEXT NOT NULL,
    created_at TEXT DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS reports (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    kind TEXT NOT NULL CHECK(kind IN ('feedback', 'records', 'combined')),
    title TEXT NOT NULL,
    body_markdown TEXT NOT NULL,
    generated_at TEXT DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_feedback_submitted ON feedback_items(submitted_at);
CREATE INDEX IF NOT EXISTS idx_feedback_sentiment ON feedback_items(sentiment);
CREATE INDEX IF NOT EXISTS idx_records_type ON personal_records(type);
CREATE INDEX IF NOT EXISTS idx_records_recorded ON personal_records(recorded_at);
CREATE INDEX IF NOT EXISTS idx_reports_kind ON reports(kind);
`)
			return err
		},
	},
}

// latestVersion returns the highest migration version number.
func latestVersion() int {
	if len(migrations) == 0 {
		return 0
	}
	return migrations[len(migrations)-1].Version
}
