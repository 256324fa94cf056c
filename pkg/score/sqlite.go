package score

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/matzehuels/stacker/pkg/errors"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS high_scores (
	profile    TEXT PRIMARY KEY,
	score      INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteStore keeps high scores in a single SQLite table.
type SQLiteStore struct {
	db      *sql.DB
	profile string
}

// NewSQLiteStore opens the database at path and creates the table if needed.
func NewSQLiteStore(ctx context.Context, path, profile string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "open sqlite db")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "ping sqlite db")
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db, profile: profile}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (int, error) {
	var v int
	err := s.db.QueryRowContext(ctx,
		`SELECT score FROM high_scores WHERE profile = ?`, s.profile).Scan(&v)
	if stderrors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "select high score")
	}
	return v, nil
}

func (s *SQLiteStore) Save(ctx context.Context, score int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO high_scores (profile, score, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(profile) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		s.profile, score, time.Now().UTC().UnixMilli())
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "upsert high score")
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
