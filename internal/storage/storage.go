package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/nikbrunner/curdirmark/internal/model"
)

// DefaultDatabaseName is the file name of the store inside the home directory.
const DefaultDatabaseName = ".curdirmarkdb"

// Backend names a storage format.
type Backend string

const (
	// BackendText is the flat `name=path` text file. It is the default.
	BackendText Backend = "text"
	// BackendSQLite stores bookmarks in a SQLite database.
	BackendSQLite Backend = "sqlite"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Storage defines the interface for persisting bookmarks.
// Every Load and Save opens and releases the backing file on its own.
type Storage interface {
	Load() (*model.Store, error)
	Save(store *model.Store) error
	Path() string
}

// FileStorage implements Storage using a flat text file with one
// `name=path` line per bookmark.
type FileStorage struct {
	path string
}

// NewFileStorage creates a new FileStorage with the given file path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Path returns the storage file path.
func (s *FileStorage) Path() string {
	return s.path
}

// Load reads the store from the text file, creating the file if it
// doesn't exist. Lines that don't split into exactly two non-empty parts
// on `=` are skipped.
func (s *FileStorage) Load() (*model.Store, error) {
	file, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer file.Close()

	store := model.NewStore()
	skipped := 0

	// Lines have no length limit.
	r := bufio.NewReader(file)
	for {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read %s: %w", s.path, err)
		}
		if line != "" {
			name, path, ok := parseLine(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
			if ok {
				store.Set(name, path)
			} else {
				skipped++
			}
		}
		if err != nil {
			break
		}
	}

	log.WithFields(log.Fields{
		"path":    s.path,
		"count":   store.Len(),
		"skipped": skipped,
	}).Debug("loaded bookmarks")

	return store, nil
}

// Save truncates the text file and writes every bookmark, sorted by name.
// The file is rewritten in place, so a failed write can leave it partial.
func (s *FileStorage) Save(store *model.Store) error {
	file, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}

	w := bufio.NewWriter(file)
	for _, b := range store.List() {
		if _, err := fmt.Fprintf(w, "%s=%s\n", b.Name, b.Path); err != nil {
			file.Close()
			return fmt.Errorf("write %s: %w", s.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}

	log.WithFields(log.Fields{
		"path":  s.path,
		"count": store.Len(),
	}).Debug("saved bookmarks")

	return nil
}

// parseLine splits a `name=path` line. A line with no `=`, more than one
// `=`, or an empty side is rejected, so paths containing `=` don't survive
// a round trip.
func parseLine(line string) (name, path string, ok bool) {
	parts := strings.Split(line, "=")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Open returns the storage backend for path.
// An empty backend means BackendText, whatever the file is called.
func Open(path string, backend Backend) (Storage, error) {
	switch backend {
	case "", BackendText:
		return NewFileStorage(path), nil
	case BackendSQLite:
		return NewSQLiteStorage(path), nil
	default:
		return nil, fmt.Errorf("%q: %w", backend, ErrUnknownBackend)
	}
}

// DefaultDatabasePath returns the default store path: $HOME/.curdirmarkdb.
// Falls back to the current directory when HOME is unset.
func DefaultDatabasePath() string {
	home := os.Getenv("HOME")
	if home == "" {
		home = "."
	}
	return filepath.Join(home, DefaultDatabaseName)
}
