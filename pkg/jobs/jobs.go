// Package jobs keeps a SQLite record of every reconstruction the service
// has produced, so generated models can be listed and re-served later.
package jobs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Job is one completed reconstruction.
type Job struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Elements   int       `json:"elements"`
	Nodes      int       `json:"nodes"`
	OutputPath string    `json:"outputPath"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ErrNotFound is returned when no job exists for an ID.
var ErrNotFound = errors.New("job not found")

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the job database at the given path and
// applies the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS jobs (
            id          TEXT PRIMARY KEY,
            source      TEXT NOT NULL,
            elements    INTEGER NOT NULL,
            nodes       INTEGER NOT NULL,
            output_path TEXT NOT NULL,
            created_at  TEXT NOT NULL
        )
    `); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record persists one completed job.
func (s *Store) Record(ctx context.Context, j Job) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO jobs (id, source, elements, nodes, output_path, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, j.ID, j.Source, j.Elements, j.Nodes, j.OutputPath, j.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("record job: %w", err)
	}
	return nil
}

// Get returns the job with the given ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Job, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, source, elements, nodes, output_path, created_at
        FROM jobs
        WHERE id = ?
    `, id)
	j, err := scanJob(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return j, err
}

// List returns all jobs, newest first.
func (s *Store) List(ctx context.Context) ([]Job, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, source, elements, nodes, output_path, created_at
        FROM jobs
        ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		j, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}
	return out, rows.Err()
}

func scanJob(scan func(...any) error) (*Job, error) {
	var j Job
	var created string
	if err := scan(&j.ID, &j.Source, &j.Elements, &j.Nodes, &j.OutputPath, &created); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	j.CreatedAt = t
	return &j, nil
}
