package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// SQLStore persists records in SQLite. Each record is one row holding
// its JSON body, keyed by (kind, id).
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore opens the database at path, creating parent directories
// as needed. An empty path opens a private in-memory database.
func NewSQLStore(path string) (*SQLStore, error) {
	dsn := ":memory:"
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("records: create data dir: %w", err)
		}
		dsn = path
	}

	db, err := openDB("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("records: open database: %w", err)
	}
	// One connection: an in-memory database is per-connection, and the
	// store assumes a single writer anyway.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	if path != "" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("records: pragma %q: %w", p, err)
		}
	}

	s := &SQLStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("records: migration: %w", err)
	}
	return s, nil
}

func (s *SQLStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			kind       TEXT    NOT NULL,
			id         INTEGER NOT NULL,
			body       TEXT    NOT NULL,
			created_at TEXT    NOT NULL DEFAULT (datetime('now')),
			PRIMARY KEY (kind, id)
		);
	`)
	return err
}

// NextID implements Store.
func (s *SQLStore) NextID(ctx context.Context, kind Kind) (int, error) {
	var next int
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(id), 0) + 1 FROM records WHERE kind = ?`, string(kind),
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("records: next id for %s: %w", kind, err)
	}
	return next, nil
}

// Append implements Store. A duplicate identity is rejected by the
// primary key.
func (s *SQLStore) Append(ctx context.Context, rec Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("records: encode %s %d: %w", rec.RecordKind(), rec.RecordID(), err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (kind, id, body) VALUES (?, ?, ?)`,
		string(rec.RecordKind()), rec.RecordID(), string(body),
	)
	if err != nil {
		return fmt.Errorf("records: append %s %d: %w", rec.RecordKind(), rec.RecordID(), err)
	}
	return nil
}

// All implements Store.
func (s *SQLStore) All(ctx context.Context, kind Kind) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT body FROM records WHERE kind = ? ORDER BY rowid`, string(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("records: list %s: %w", kind, err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("records: scan %s: %w", kind, err)
		}
		rec, err := decode(kind, []byte(body))
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Close closes the underlying database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func decode(kind Kind, body []byte) (Record, error) {
	switch kind {
	case KindUser:
		var u User
		if err := json.Unmarshal(body, &u); err != nil {
			return nil, fmt.Errorf("records: decode user: %w", err)
		}
		return u, nil
	case KindJob:
		var j Job
		if err := json.Unmarshal(body, &j); err != nil {
			return nil, fmt.Errorf("records: decode job: %w", err)
		}
		return j, nil
	default:
		return nil, fmt.Errorf("records: unknown kind %q", kind)
	}
}
