// Package store provides local SQLite persistence for the resume profile
// and the scoring engine's historical counters.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// HighScoreThreshold is the ATS percentage at or above which a selection
// counts toward a bullet's high-score tally.
const HighScoreThreshold = 75.0

// Store wraps the local SQLite database.
type Store struct {
	db *sql.DB

	// now supplies timestamps for first/last-seen dates; overridable in
	// tests to keep window queries deterministic.
	now func() time.Time
}

// Open opens (creating if necessary) the SQLite database at path and
// bootstraps the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.bootstrap(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) bootstrap() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS personal_info (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	name TEXT NOT NULL,
	email TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	linkedin TEXT NOT NULL DEFAULT '',
	github TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	summary TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS work_experience (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	company TEXT NOT NULL,
	title TEXT NOT NULL,
	location TEXT NOT NULL DEFAULT '',
	start_date TEXT NOT NULL DEFAULT '',
	end_date TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS projects (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	url TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS bullets (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT NOT NULL,
	keywords TEXT NOT NULL DEFAULT '',
	work_experience_id INTEGER REFERENCES work_experience(id) ON DELETE CASCADE,
	project_id INTEGER REFERENCES projects(id) ON DELETE CASCADE,
	position INTEGER NOT NULL DEFAULT 0,
	CHECK ((work_experience_id IS NULL) <> (project_id IS NULL))
);

CREATE TABLE IF NOT EXISTS skills (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT '',
	proficiency TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS applications (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	company TEXT NOT NULL DEFAULT '',
	title TEXT NOT NULL DEFAULT '',
	job_description TEXT NOT NULL DEFAULT '',
	role TEXT NOT NULL DEFAULT '',
	ats_score REAL NOT NULL DEFAULT 0,
	bullets_used TEXT NOT NULL DEFAULT '',
	outcome TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS ingestions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	ingested_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS keyword_frequency (
	keyword TEXT PRIMARY KEY,
	jd_count INTEGER NOT NULL DEFAULT 0,
	first_seen TEXT NOT NULL,
	last_seen TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS role_keywords (
	role TEXT NOT NULL,
	keyword TEXT NOT NULL,
	jd_count INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (role, keyword)
);

CREATE TABLE IF NOT EXISTS bullet_performance (
	bullet_id INTEGER PRIMARY KEY REFERENCES bullets(id) ON DELETE CASCADE,
	times_selected INTEGER NOT NULL DEFAULT 0,
	times_high_score INTEGER NOT NULL DEFAULT 0,
	times_interview INTEGER NOT NULL DEFAULT 0,
	times_offer INTEGER NOT NULL DEFAULT 0
);
`
