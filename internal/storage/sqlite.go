package storage

import (
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/nikbrunner/curdirmark/internal/model"
)

const schema = `
	CREATE TABLE IF NOT EXISTS bookmarks (
		name TEXT PRIMARY KEY NOT NULL,
		path TEXT NOT NULL
	);
`

// SQLiteStorage implements Storage using a SQLite database.
// The database is opened per call; no connection outlives Load or Save.
type SQLiteStorage struct {
	path string
}

// NewSQLiteStorage creates a new SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) *SQLiteStorage {
	return &SQLiteStorage{path: path}
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// open opens the database and ensures the schema exists.
func (s *SQLiteStorage) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("configure %s: %w", s.path, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", s.path, err)
	}

	return db, nil
}

// Load reads the store from the SQLite database, creating it if needed.
func (s *SQLiteStorage) Load() (*model.Store, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT name, path FROM bookmarks`)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.path, err)
	}
	defer rows.Close()

	store := model.NewStore()
	for rows.Next() {
		var name, path string
		if err := rows.Scan(&name, &path); err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.path, err)
		}
		// Mirror the text format: empty sides are not bookmarks.
		if name == "" || path == "" {
			continue
		}
		store.Set(name, path)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query %s: %w", s.path, err)
	}

	log.WithFields(log.Fields{
		"path":  s.path,
		"count": store.Len(),
	}).Debug("loaded bookmarks")

	return store, nil
}

// Save replaces every row in the database inside one transaction.
func (s *SQLiteStorage) Save(store *model.Store) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin %s: %w", s.path, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM bookmarks"); err != nil {
		return fmt.Errorf("clear %s: %w", s.path, err)
	}

	stmt, err := tx.Prepare(`INSERT INTO bookmarks (name, path) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare %s: %w", s.path, err)
	}
	defer stmt.Close()

	for _, b := range store.List() {
		if _, err := stmt.Exec(b.Name, b.Path); err != nil {
			return fmt.Errorf("insert %q into %s: %w", b.Name, s.path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", s.path, err)
	}

	log.WithFields(log.Fields{
		"path":  s.path,
		"count": store.Len(),
	}).Debug("saved bookmarks")

	return nil
}
