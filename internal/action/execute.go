package action

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/nikbrunner/curdirmark/internal/model"
	"github.com/nikbrunner/curdirmark/internal/search"
	"github.com/nikbrunner/curdirmark/internal/storage"
)

var (
	// ErrNotImplemented is returned by actions that have no behavior yet.
	ErrNotImplemented = errors.New("not implemented")
	// ErrUnknownAction is returned for values outside the Action set.
	ErrUnknownAction = errors.New("unknown action")
)

// Config is the read-only input shared by all actions.
type Config struct {
	Database string
	Backend  storage.Backend
	Name     string
	WorkDir  string
	Query    string
}

// Result is what an action hands back for display.
type Result struct {
	// Path is set by Show on a hit.
	Path string
	// Store is set by List and Pick.
	Store *model.Store
	// Matches holds the ranked Pick candidates.
	Matches []search.Match
	// Usage asks the CLI layer to print usage text.
	Usage bool
}

// Execute runs a against the store at cfg.Database.
// A nil Result means there is nothing to print.
func Execute(a Action, cfg Config) (*Result, error) {
	logger := log.WithFields(log.Fields{
		"action":   a.String(),
		"database": cfg.Database,
	})
	if a.NeedsName() {
		logger = logger.WithField("name", cfg.Name)
	}
	logger.Debug("executing action")

	switch a {
	case Save:
		return nil, save(cfg)
	case Show:
		return show(cfg)
	case Delete:
		return nil, remove(cfg)
	case List:
		return list(cfg)
	case RemoveDatabase:
		return nil, fmt.Errorf("%s: %w", a, ErrNotImplemented)
	case Help:
		return &Result{Usage: true}, nil
	case Pick:
		return pick(cfg)
	default:
		return nil, fmt.Errorf("%d: %w", int(a), ErrUnknownAction)
	}
}

// load opens the configured backend and reads the whole store.
func load(cfg Config) (storage.Storage, *model.Store, error) {
	s, err := storage.Open(cfg.Database, cfg.Backend)
	if err != nil {
		return nil, nil, err
	}
	store, err := s.Load()
	if err != nil {
		return nil, nil, err
	}
	return s, store, nil
}

func save(cfg Config) error {
	s, store, err := load(cfg)
	if err != nil {
		return err
	}
	store.Set(cfg.Name, cfg.WorkDir)
	return s.Save(store)
}

func show(cfg Config) (*Result, error) {
	_, store, err := load(cfg)
	if err != nil {
		return nil, err
	}
	path, ok := store.Get(cfg.Name)
	if !ok {
		log.WithField("name", cfg.Name).Debug("bookmark not found")
		return nil, nil
	}
	return &Result{Path: path}, nil
}

// remove rewrites the store even when the name was absent.
func remove(cfg Config) error {
	s, store, err := load(cfg)
	if err != nil {
		return err
	}
	if !store.Delete(cfg.Name) {
		log.WithField("name", cfg.Name).Debug("bookmark not found")
	}
	return s.Save(store)
}

func list(cfg Config) (*Result, error) {
	_, store, err := load(cfg)
	if err != nil {
		return nil, err
	}
	return &Result{Store: store}, nil
}

func pick(cfg Config) (*Result, error) {
	_, store, err := load(cfg)
	if err != nil {
		return nil, err
	}
	return &Result{
		Store:   store,
		Matches: search.Find(store, cfg.Query),
	}, nil
}
