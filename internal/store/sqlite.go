// Package store persists answer records across runs in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"docqa/internal/domain"
)

// SQLite is the answer history backed by a single SQLite file.
type SQLite struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS answers (
	id         TEXT PRIMARY KEY,
	document   TEXT NOT NULL,
	question   TEXT NOT NULL,
	answer     TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_answers_created_at ON answers(created_at);
`

// Open opens (creating if needed) the history database at path.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Save appends one answer record.
func (s *SQLite) Save(ctx context.Context, rec domain.AnswerRecord) error {
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO answers(id, document, question, answer, created_at) VALUES(?,?,?,?,?)`,
		rec.ID, rec.Document, rec.Question, rec.Answer, created.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save answer: %w", err)
	}
	return nil
}

// List returns up to limit records, newest first.
func (s *SQLite) List(ctx context.Context, limit int) ([]domain.AnswerRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, document, question, answer, created_at FROM answers ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()
	var out []domain.AnswerRecord
	for rows.Next() {
		var rec domain.AnswerRecord
		var created string
		if err := rows.Scan(&rec.ID, &rec.Document, &rec.Question, &rec.Answer, &created); err != nil {
			return nil, err
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }
