// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package indexable persists page inputs in SQLite and indexes batches of
// them through a session with injected pre and post hooks.
package indexable

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/content-analysis/pkg/types"
)

const (
	defaultIndexDir = ".content-analysis"
	dbFile          = "indexables.db"
)

// ErrNotFound is returned when no indexable has the requested ID.
var ErrNotFound = errors.New("indexable not found")

// Store manages the indexables SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the database at cfg.IndexDir/indexables.db and
// creates the schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dir := cfg.IndexDir
	if dir == "" {
		dir = defaultIndexDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS indexables (
			id TEXT PRIMARY KEY,
			source TEXT,
			permalink TEXT,
			locale TEXT,
			text TEXT NOT NULL,
			attributes TEXT NOT NULL,
			content_hash TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_indexables_permalink ON indexables(permalink)`,
		`CREATE INDEX IF NOT EXISTS idx_indexables_locale ON indexables(locale)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// ContentHash fingerprints the text and attributes of ix. Two indexables
// with the same hash analyse identically.
func ContentHash(ix types.Indexable) string {
	attrs, _ := json.Marshal(ix.Attributes)
	h := sha256.New()
	h.Write([]byte(ix.Text))
	h.Write([]byte{0})
	h.Write(attrs)
	return hex.EncodeToString(h.Sum(nil))
}

// Save inserts or replaces ix, filling in its hash and update time. The
// stored copy is returned.
func (s *Store) Save(ctx context.Context, ix types.Indexable) (types.Indexable, error) {
	if strings.TrimSpace(ix.ID) == "" {
		return ix, errors.New("indexable has no id")
	}
	ix.ContentHash = ContentHash(ix)
	ix.UpdatedAt = time.Now().UTC()

	attrs, err := json.Marshal(ix.Attributes)
	if err != nil {
		return ix, fmt.Errorf("encoding attributes: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO indexables (id, source, permalink, locale, text, attributes, content_hash, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			source=excluded.source, permalink=excluded.permalink, locale=excluded.locale,
			text=excluded.text, attributes=excluded.attributes,
			content_hash=excluded.content_hash, updated_at=excluded.updated_at`,
		ix.ID, ix.Source, ix.Attributes.Permalink, ix.Attributes.Locale,
		ix.Text, string(attrs), ix.ContentHash, ix.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return ix, fmt.Errorf("saving indexable %s: %w", ix.ID, err)
	}
	return ix, nil
}

const selectColumns = `SELECT id, source, text, attributes, content_hash, updated_at FROM indexables`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIndexable(row rowScanner) (types.Indexable, error) {
	var (
		ix               types.Indexable
		source           sql.NullString
		attrs, updatedAt string
	)
	if err := row.Scan(&ix.ID, &source, &ix.Text, &attrs, &ix.ContentHash, &updatedAt); err != nil {
		return ix, err
	}
	ix.Source = source.String
	if err := json.Unmarshal([]byte(attrs), &ix.Attributes); err != nil {
		return ix, fmt.Errorf("decoding attributes of %s: %w", ix.ID, err)
	}
	if t, err := time.Parse(time.RFC3339Nano, updatedAt); err == nil {
		ix.UpdatedAt = t
	}
	return ix, nil
}

// Get returns the indexable with the given ID, or an error wrapping
// ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (types.Indexable, error) {
	ix, err := scanIndexable(s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return ix, fmt.Errorf("indexable %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return ix, fmt.Errorf("reading indexable %q: %w", id, err)
	}
	return ix, nil
}

// ListOptions filters List. Zero values match everything.
type ListOptions struct {
	// Locale keeps indexables whose locale equals this tag.
	Locale string

	// Contains keeps indexables whose text contains this substring.
	Contains string

	// Limit caps the number of rows. Zero means no limit.
	Limit int
}

// List returns indexables ordered by ID.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]types.Indexable, error) {
	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(selectColumns + ` WHERE 1=1`)
	if opts.Locale != "" {
		qb.WriteString(` AND locale = ?`)
		args = append(args, opts.Locale)
	}
	if opts.Contains != "" {
		qb.WriteString(` AND instr(text, ?) > 0`)
		args = append(args, opts.Contains)
	}
	qb.WriteString(` ORDER BY id`)
	if opts.Limit > 0 {
		qb.WriteString(` LIMIT ?`)
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("listing indexables: %w", err)
	}
	defer rows.Close()

	var out []types.Indexable
	for rows.Next() {
		ix, err := scanIndexable(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning indexable: %w", err)
		}
		out = append(out, ix)
	}
	return out, rows.Err()
}

// Delete removes the indexable with the given ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM indexables WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting indexable %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting indexable %q: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("indexable %q: %w", id, ErrNotFound)
	}
	return nil
}

// hashOf returns the stored content hash of id and whether a row exists.
func (s *Store) hashOf(ctx context.Context, id string) (string, bool, error) {
	var hash string
	err := s.db.QueryRowContext(ctx, `SELECT content_hash FROM indexables WHERE id = ?`, id).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return hash, true, nil
}
