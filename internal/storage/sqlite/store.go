// Package sqlite provides a SQLite implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jwulff/kaza-go/internal/domain"
	"github.com/jwulff/kaza-go/internal/storage"

	_ "modernc.org/sqlite"
)

// Store is a SQLite implementation of storage.Store.
type Store struct {
	db *sql.DB
}

// NewMemoryStore creates an in-memory SQLite store.
func NewMemoryStore() (*Store, error) {
	return newStore(":memory:")
}

// NewFileStore creates a file-based SQLite store, creating the parent
// directory if needed.
func NewFileStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	return newStore(path)
}

func newStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection: an in-memory database lives and dies with it.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. Any later call returns
// storage.ErrNotInitialized.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) conn() (*sql.DB, error) {
	if s == nil || s.db == nil {
		return nil, storage.ErrNotInitialized
	}
	return s.db, nil
}

// Missed prayer methods

// AddMissedPrayer inserts prayer and sets its ID. A driver that cannot
// report the new row id yields 0 without an error.
func (s *Store) AddMissedPrayer(ctx context.Context, prayer *domain.MissedPrayer) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO missed_prayers (prayer_type, date) VALUES (?, ?)
	`, string(prayer.Type), prayer.Date)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, nil
	}
	prayer.ID = id
	return id, nil
}

// ListMissedPrayers returns every row, newest date first. Rows sharing a
// date come back most recently inserted first.
func (s *Store) ListMissedPrayers(ctx context.Context) ([]domain.MissedPrayer, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, prayer_type, date, created_at FROM missed_prayers
		ORDER BY date DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prayers []domain.MissedPrayer
	for rows.Next() {
		var (
			p         domain.MissedPrayer
			prayerTyp string
			createdAt string
		)
		if err := rows.Scan(&p.ID, &prayerTyp, &p.Date, &createdAt); err != nil {
			return nil, err
		}
		p.Type = domain.PrayerType(prayerTyp)
		if ts, err := time.ParseInLocation(createdAtLayout, createdAt, time.UTC); err == nil {
			p.CreatedAt = ts
		}
		prayers = append(prayers, p)
	}
	return prayers, rows.Err()
}

func (s *Store) DeleteMissedPrayer(ctx context.Context, id int64) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, "DELETE FROM missed_prayers WHERE id = ?", id)
	return err
}

func (s *Store) CountMissedPrayers(ctx context.Context) (int, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}
	var count int
	err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM missed_prayers").Scan(&count)
	return count, err
}

// Settings methods

func (s *Store) GetSetting(ctx context.Context, key string) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	var value sql.NullString
	err = db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows || (err == nil && !value.Valid) {
		return "", storage.ErrNotFound{Resource: "setting", ID: key}
	}
	return value.String, err
}

func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

func (s *Store) DeleteSetting(ctx context.Context, key string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
	return err
}

// Verify interface compliance
var _ storage.Store = (*Store)(nil)
