// Package sqlite provides the SQLite-backed draft store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"pjadhav.dev/internal/models"
	"pjadhav.dev/internal/storage"
	"pjadhav.dev/internal/storage/sqlite/migrations"
)

const timeFormat = time.RFC3339Nano

// Store persists contact drafts in a SQLite database
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens (creating if needed) a SQLite store at path and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{
		sqlDB: sqlDB,
		now:   func() time.Time { return time.Now().UTC() },
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetDraft returns the stored draft or storage.ErrNotFound.
func (s *Store) GetDraft(ctx context.Context, draftID string) (models.ContactDraft, error) {
	if err := s.check(ctx, draftID); err != nil {
		return models.ContactDraft{}, err
	}

	var d models.ContactDraft
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT name, email, message FROM contact_drafts WHERE draft_id = ?`, draftID)
	if err := row.Scan(&d.Name, &d.Email, &d.Message); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ContactDraft{}, storage.ErrNotFound
		}
		return models.ContactDraft{}, fmt.Errorf("get draft: %w", err)
	}
	return d, nil
}

// PutDraft inserts or replaces the draft for draftID.
func (s *Store) PutDraft(ctx context.Context, draftID string, draft models.ContactDraft) error {
	if err := s.check(ctx, draftID); err != nil {
		return err
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO contact_drafts (draft_id, name, email, message, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(draft_id) DO UPDATE SET
    name = excluded.name,
    email = excluded.email,
    message = excluded.message,
    updated_at = excluded.updated_at`,
		draftID, draft.Name, draft.Email, draft.Message, s.now().Format(timeFormat))
	if err != nil {
		return fmt.Errorf("put draft: %w", err)
	}
	return nil
}

// DeleteDraft removes the draft row. Deleting a missing draft is not an error.
func (s *Store) DeleteDraft(ctx context.Context, draftID string) error {
	if err := s.check(ctx, draftID); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM contact_drafts WHERE draft_id = ?`, draftID); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

func (s *Store) check(ctx context.Context, draftID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(draftID) == "" {
		return fmt.Errorf("draft id is required")
	}
	return nil
}

// applyMigrations executes each embedded *.sql file once, in name order.
func applyMigrations(sqlDB *sql.DB, migrationFS fs.FS) error {
	if _, err := sqlDB.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		var found int
		err := sqlDB.QueryRow(`SELECT 1 FROM schema_migrations WHERE name = ?`, name).Scan(&found)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check migration %s: %w", name, err)
		}

		content, err := fs.ReadFile(migrationFS, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		tx, err := sqlDB.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", name, err)
		}
		if _, err := tx.Exec(upSection(string(content))); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec migration %s: %w", name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (name, applied_at) VALUES (?, ?)`,
			name, time.Now().UTC().UnixMilli()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", name, err)
		}
	}
	return nil
}

// upSection returns the SQL between "-- +migrate Up" and "-- +migrate Down".
func upSection(content string) string {
	const up, down = "-- +migrate Up", "-- +migrate Down"
	start := strings.Index(content, up)
	if start == -1 {
		return content
	}
	content = content[start+len(up):]
	if end := strings.Index(content, down); end != -1 {
		content = content[:end]
	}
	return content
}

var _ storage.DraftStore = (*Store)(nil)
